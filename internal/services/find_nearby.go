package services

import (
	"context"
	"errors"
	"fmt"
	"nearby-places-service/internal/domain"
	"nearby-places-service/internal/ports"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrAddressNotFound = errors.New("address not found")

type NearbyRequest struct {
	Address  string `validate:"required"`
	Query    string `validate:"required"`
	Location string
	Zoom     int `validate:"min=1,max=21"`
	Locale   string
}

type NearbyResult struct {
	Origin domain.Coordinates
	Places []domain.RankedPlace
}

var validate = validator.New()

// FindNearby geocodes the address, searches around the resulting origin and
// ranks the results by distance.
//
// When the address does not geocode it returns ErrAddressNotFound without
// calling the searcher. Service failures are returned wrapped.
func FindNearby(
	ctx context.Context,
	req NearbyRequest,
	geocoder ports.Geocoder,
	searcher ports.LocalSearcher,
) (*NearbyResult, error) {
	req.Address = strings.TrimSpace(req.Address)
	req.Query = strings.TrimSpace(req.Query)
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("find nearby: invalid request: %w", err)
	}

	origin, found, err := geocoder.Geocode(ctx, req.Address)
	if err != nil {
		return nil, fmt.Errorf("find nearby: geocode address: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("find nearby: %q: %w", req.Address, ErrAddressNotFound)
	}

	places, err := searcher.Search(ctx, domain.LocalSearchRequest{
		Query:    req.Query,
		Origin:   origin,
		Zoom:     req.Zoom,
		Location: req.Location,
		Locale:   req.Locale,
	})
	if err != nil {
		return nil, fmt.Errorf("find nearby: local search: %w", err)
	}

	return &NearbyResult{
		Origin: origin,
		Places: RankByDistance(origin, places),
	}, nil
}
