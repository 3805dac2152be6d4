package services

import (
	"context"
	"errors"
	"fmt"
	"nearby-places-service/internal/domain"
	"nearby-places-service/internal/ports"
)

// SavedSearchOutcome is the result of one saved search.
// Result is nil when the address did not geocode (NotFound is true).
type SavedSearchOutcome struct {
	Search   *domain.SavedSearch
	Result   *NearbyResult
	NotFound bool
}

// RunSavedSearches runs every saved search one after another and hands each
// outcome to fn. An address that does not geocode is reported and the batch
// continues; any service failure or error from fn stops the batch.
func RunSavedSearches(
	ctx context.Context,
	repo ports.SavedSearchRepository,
	geocoder ports.Geocoder,
	searcher ports.LocalSearcher,
	fn func(SavedSearchOutcome) error,
) error {
	searches, err := repo.ListSavedSearches(ctx)
	if err != nil {
		return fmt.Errorf("run saved searches: list saved searches: %w", err)
	}

	for _, s := range searches {
		if s == nil {
			return errors.New("run saved searches: nil saved search")
		}

		req := NearbyRequest{
			Address:  s.Address,
			Query:    s.Query,
			Location: s.Location,
			Zoom:     s.Zoom,
			Locale:   s.Locale,
		}

		res, err := FindNearby(ctx, req, geocoder, searcher)
		outcome := SavedSearchOutcome{Search: s, Result: res}
		if errors.Is(err, ErrAddressNotFound) {
			outcome.NotFound = true
		} else if err != nil {
			return fmt.Errorf("run saved searches: id=%d: %w", s.ID, err)
		}

		if err := fn(outcome); err != nil {
			return fmt.Errorf("run saved searches: id=%d: %w", s.ID, err)
		}
	}

	return nil
}
