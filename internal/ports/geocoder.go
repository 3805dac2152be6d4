package ports

import (
	"context"
	"nearby-places-service/internal/domain"
)

// Contract for resolving a free-text address to coordinates.
type Geocoder interface {
	// Return the best-match coordinates, or found=false when the service has no match.
	Geocode(ctx context.Context, address string) (coords domain.Coordinates, found bool, err error)
}
