package api

import (
	"context"
	"encoding/json"
	"errors"
	"nearby-places-service/internal/adapters/geocode"
	"nearby-places-service/internal/adapters/search"
	"nearby-places-service/internal/api/dto"
	"nearby-places-service/internal/api/handlers"
	"nearby-places-service/internal/domain"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const home = "1125 west washburne avenue, Chicago, 60608"

var defaults = handlers.SearchDefaults{Query: "Restaurants", Zoom: 15, Locale: "en"}

type fakeRepo struct {
	searches []*domain.SavedSearch
}

func (r *fakeRepo) ListSavedSearches(ctx context.Context) ([]*domain.SavedSearch, error) {
	return r.searches, nil
}

func ptr[T any](v T) *T { return &v }

func serve(t *testing.T, h http.Handler, method, target string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNearbyEndpoint(t *testing.T) {
	geocoder := geocode.NewMockGeocoder(map[string]domain.Coordinates{
		home: {Lat: 41.8586, Lon: -87.6295},
	})
	searcher := search.NewMockLocalSearcher([]domain.Place{
		{Title: ptr("No GPS")},
		{Title: ptr("Near"), Address: ptr("1 Main St"), Rating: ptr(4.5), Type: ptr("Bar"),
			GPS: &domain.GPSCoordinates{Latitude: ptr(41.86), Longitude: ptr(-87.63)}},
	})
	router := NewRouter(geocoder, searcher, nil, defaults)

	rec := serve(t, router, http.MethodGet, "/nearby?address=1125+west+washburne+avenue,+Chicago,+60608&zoom=14")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.NearbyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, 41.8586, res.Origin.Lat)
	require.Len(t, res.Places, 2)
	assert.Equal(t, "Near", res.Places[0].Title)
	require.NotNil(t, res.Places[0].DistanceMiles)
	assert.Less(t, *res.Places[0].DistanceMiles, 0.2)
	assert.Equal(t, "No GPS", res.Places[1].Title)
	assert.Equal(t, "No address", res.Places[1].Address)
	assert.Nil(t, res.Places[1].DistanceMiles)

	assert.Equal(t, []dto.CategoryResponse{{Type: "Bar", Count: 1}, {Type: domain.OtherCategory, Count: 1}}, res.Categories)
	assert.Contains(t, res.Summary, "Bar: Near (")
	assert.Contains(t, res.Summary, "Other: No GPS (distance unknown).")

	require.Len(t, searcher.Requests, 1)
	assert.Equal(t, "Restaurants", searcher.Requests[0].Query)
	assert.Equal(t, 14, searcher.Requests[0].Zoom)
}

func TestNearbyEndpointRegionHint(t *testing.T) {
	geocoder := geocode.NewMockGeocoder(map[string]domain.Coordinates{
		"Paris, France": {Lat: 48.8566, Lon: 2.3522},
	})

	t.Run("no hint unless asked", func(t *testing.T) {
		searcher := search.NewMockLocalSearcher(nil)
		router := NewRouter(geocoder, searcher, nil, defaults)

		rec := serve(t, router, http.MethodGet, "/nearby?address=Paris,+France")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, searcher.Requests, 1)
		assert.Equal(t, "", searcher.Requests[0].Location)
	})

	t.Run("explicit hint is passed through", func(t *testing.T) {
		searcher := search.NewMockLocalSearcher(nil)
		router := NewRouter(geocoder, searcher, nil, defaults)

		rec := serve(t, router, http.MethodGet, "/nearby?address=Paris,+France&location=75001")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, searcher.Requests, 1)
		assert.Equal(t, "75001", searcher.Requests[0].Location)
	})
}

func TestNearbyEndpointErrors(t *testing.T) {
	tests := []struct {
		name     string
		geocoder *geocode.MockGeocoder
		searcher *search.MockLocalSearcher
		method   string
		target   string
		want     int
	}{
		{"missing address", geocode.NewMockGeocoder(nil), search.NewMockLocalSearcher(nil),
			http.MethodGet, "/nearby", http.StatusBadRequest},
		{"bad zoom", geocode.NewMockGeocoder(nil), search.NewMockLocalSearcher(nil),
			http.MethodGet, "/nearby?address=x&zoom=99", http.StatusBadRequest},
		{"not found", geocode.NewMockGeocoder(nil), search.NewMockLocalSearcher(nil),
			http.MethodGet, "/nearby?address=atlantis", http.StatusNotFound},
		{"upstream failure", geocode.NewFailingGeocoder(errors.New("boom")), search.NewMockLocalSearcher(nil),
			http.MethodGet, "/nearby?address=x", http.StatusBadGateway},
		{"wrong method", geocode.NewMockGeocoder(nil), search.NewMockLocalSearcher(nil),
			http.MethodPost, "/nearby?address=x", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(tt.geocoder, tt.searcher, nil, defaults)
			rec := serve(t, router, tt.method, tt.target)
			assert.Equal(t, tt.want, rec.Code)
			assert.Empty(t, tt.searcher.Requests)
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := NewRouter(geocode.NewMockGeocoder(nil), search.NewMockLocalSearcher(nil), nil, defaults)

	rec := serve(t, router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSavedSearchesEndpoint(t *testing.T) {
	repo := &fakeRepo{searches: []*domain.SavedSearch{
		{ID: 1, Address: home, Query: "Restaurants", Location: "60608", Zoom: 15, Locale: "en"},
	}}

	router := NewRouter(geocode.NewMockGeocoder(nil), search.NewMockLocalSearcher(nil), repo, defaults)
	rec := serve(t, router, http.MethodGet, "/saved-searches")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListSavedSearchesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.SavedSearches, 1)
	assert.Equal(t, home, res.SavedSearches[0].Address)

	noRepo := NewRouter(geocode.NewMockGeocoder(nil), search.NewMockLocalSearcher(nil), nil, defaults)
	assert.Equal(t, http.StatusNotFound, serve(t, noRepo, http.MethodGet, "/saved-searches").Code)
}

func TestCORS(t *testing.T) {
	router := NewRouter(geocode.NewMockGeocoder(nil), search.NewMockLocalSearcher(nil), nil, defaults)

	t.Run("simple request", func(t *testing.T) {
		rec := serve(t, router, http.MethodGet, "/health", "Origin", "http://localhost:3000")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		rec := serve(t, router, http.MethodOptions, "/nearby",
			"Origin", "http://localhost:3000",
			"Access-Control-Request-Method", http.MethodGet,
		)
		assert.Less(t, rec.Code, 300)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
	})
}
