package main

import (
	"bytes"
	"context"
	"errors"
	"nearby-places-service/internal/adapters/geocode"
	"nearby-places-service/internal/adapters/search"
	"nearby-places-service/internal/domain"
	"nearby-places-service/internal/services"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func referenceRequest() services.NearbyRequest {
	return services.NearbyRequest{
		Address:  defaultAddress,
		Query:    defaultQuery,
		Location: defaultLocation,
		Zoom:     defaultZoom,
		Locale:   defaultLocale,
	}
}

func TestRunPrintsRankedPlaces(t *testing.T) {
	geocoder := geocode.NewMockGeocoder(map[string]domain.Coordinates{
		defaultAddress: {Lat: 41.8586, Lon: -87.6295},
	})
	searcher := search.NewMockLocalSearcher([]domain.Place{
		{Title: ptr("Somewhere"), Address: ptr("9 Elm St")},
		{Title: ptr("Right Here"), Address: ptr("1125 W Washburne Ave"),
			GPS: &domain.GPSCoordinates{Latitude: ptr(41.8586), Longitude: ptr(-87.6295)}},
	})

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), referenceRequest(), &out, geocoder, searcher, false))

	assert.Equal(t,
		"Address Coordinates: 41.8586, -87.6295\n"+
			"Right Here - 1125 W Washburne Ave - Distance: 0.00 miles\n"+
			"Somewhere - 9 Elm St - Distance: unknown\n",
		out.String(),
	)
}

func TestRunPrintsSummary(t *testing.T) {
	geocoder := geocode.NewMockGeocoder(map[string]domain.Coordinates{
		defaultAddress: {Lat: 41.8586, Lon: -87.6295},
	})
	searcher := search.NewMockLocalSearcher([]domain.Place{
		{Title: ptr("Right Here"), Type: ptr("diner"),
			GPS: &domain.GPSCoordinates{Latitude: ptr(41.8586), Longitude: ptr(-87.6295)}},
	})

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), referenceRequest(), &out, geocoder, searcher, true))

	assert.Equal(t,
		"Address Coordinates: 41.8586, -87.6295\n"+
			"Right Here - No address - Distance: 0.00 miles\n"+
			"Diner: Right Here (0.00 miles away).\n",
		out.String(),
	)
}

func TestRunAddressNotFound(t *testing.T) {
	geocoder := geocode.NewMockGeocoder(nil)
	searcher := search.NewMockLocalSearcher(nil)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), referenceRequest(), &out, geocoder, searcher, false))

	assert.Equal(t, "Could not find coordinates for the given address.\n", out.String())
	assert.Empty(t, searcher.Requests)
}

func TestRunEmptyResults(t *testing.T) {
	geocoder := geocode.NewMockGeocoder(map[string]domain.Coordinates{
		defaultAddress: {Lat: 41.8586, Lon: -87.6295},
	})

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), referenceRequest(), &out, geocoder, search.NewMockLocalSearcher(nil), false))
	assert.Equal(t, "Address Coordinates: 41.8586, -87.6295\n", out.String())
}

func TestRunServiceFailure(t *testing.T) {
	boom := errors.New("service unavailable")

	var out bytes.Buffer
	err := run(context.Background(), referenceRequest(), &out, geocode.NewFailingGeocoder(boom), search.NewMockLocalSearcher(nil), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Empty(t, out.String())
}

type fakeRepo struct {
	searches []*domain.SavedSearch
}

func (r *fakeRepo) ListSavedSearches(ctx context.Context) ([]*domain.SavedSearch, error) {
	return r.searches, nil
}

func TestPrintSaved(t *testing.T) {
	repo := &fakeRepo{searches: []*domain.SavedSearch{
		{ID: 1, Address: defaultAddress, Query: "Restaurants", Zoom: 15},
		{ID: 2, Address: "atlantis", Query: "Parks", Zoom: 15},
	}}
	geocoder := geocode.NewMockGeocoder(map[string]domain.Coordinates{
		defaultAddress: {Lat: 41.8586, Lon: -87.6295},
	})

	var out bytes.Buffer
	require.NoError(t, printSaved(context.Background(), repo, &out, geocoder, search.NewMockLocalSearcher(nil)))

	assert.Equal(t,
		"== #1 Restaurants near "+defaultAddress+"\n"+
			"Address Coordinates: 41.8586, -87.6295\n"+
			"== #2 Parks near atlantis\n"+
			"Could not find coordinates for the given address.\n",
		out.String(),
	)
}

func TestRegionHint(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		location string
		want     string
	}{
		{"reference address", defaultAddress, "", defaultLocation},
		{"other address", "Paris, France", "", ""},
		{"explicit location", "Paris, France", "75001", "75001"},
		{"explicit location on reference address", defaultAddress, "60607", "60607"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, regionHint(tt.address, tt.location))
		})
	}
}
