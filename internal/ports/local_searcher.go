package ports

import (
	"context"
	"nearby-places-service/internal/domain"
)

// Contract for location-scoped place searches.
type LocalSearcher interface {
	// Return the provider's local results. An empty result set is not an error.
	Search(ctx context.Context, req domain.LocalSearchRequest) ([]domain.Place, error)
}
