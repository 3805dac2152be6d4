package geocode

import (
	"context"
	"nearby-places-service/internal/domain"
)

// MockGeocoder resolves addresses from a fixed table. Unknown addresses are not found.
type MockGeocoder struct {
	m     map[string]domain.Coordinates
	err   error
	Calls int
}

func NewMockGeocoder(known map[string]domain.Coordinates) *MockGeocoder {
	m := make(map[string]domain.Coordinates, len(known))
	for k, v := range known {
		m[k] = v
	}
	return &MockGeocoder{m: m}
}

// NewFailingGeocoder returns a geocoder whose every call fails with err.
func NewFailingGeocoder(err error) *MockGeocoder {
	return &MockGeocoder{err: err}
}

func (g *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	g.Calls++
	if g.err != nil {
		return domain.Coordinates{}, false, g.err
	}

	c, ok := g.m[address]
	return c, ok, nil
}
