package ports

import (
	"context"
	"nearby-places-service/internal/domain"
)

// Port: a boundary for retrieving SavedSearch inputs from a data source.
type SavedSearchRepository interface {
	// Retrieve all saved searches in run order.
	ListSavedSearches(ctx context.Context) ([]*domain.SavedSearch, error)
}
