package handlers

import (
	"errors"
	"nearby-places-service/internal/api/dto"
	"nearby-places-service/internal/domain"
	"nearby-places-service/internal/platform/obs"
	"nearby-places-service/internal/ports"
	"nearby-places-service/internal/report"
	"nearby-places-service/internal/services"
	"net/http"
	"strconv"
	"strings"
)

// SearchDefaults fill query parameters the caller leaves out.
type SearchDefaults struct {
	Query    string
	Location string
	Zoom     int
	Locale   string
}

type NearbyHandler struct {
	Geocoder ports.Geocoder
	Searcher ports.LocalSearcher
	Defaults SearchDefaults
}

// Nearby geocodes ?address=, searches around it and returns places ranked by distance.
func (h *NearbyHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()

	address := strings.TrimSpace(q.Get("address"))
	if address == "" {
		writeError(w, r, http.StatusBadRequest, "address is required")
		return
	}

	req := services.NearbyRequest{
		Address:  address,
		Query:    valueOr(q.Get("q"), h.Defaults.Query),
		Location: valueOr(q.Get("location"), h.Defaults.Location),
		Zoom:     h.Defaults.Zoom,
		Locale:   valueOr(q.Get("hl"), h.Defaults.Locale),
	}

	if raw := strings.TrimSpace(q.Get("zoom")); raw != "" {
		zoom, err := strconv.Atoi(raw)
		if err != nil || zoom < 1 || zoom > 21 {
			writeError(w, r, http.StatusBadRequest, "zoom must be an integer between 1 and 21")
			return
		}
		req.Zoom = zoom
	}

	if req.Query == "" {
		writeError(w, r, http.StatusBadRequest, "q is required")
		return
	}

	res, err := services.FindNearby(r.Context(), req, h.Geocoder, h.Searcher)
	if errors.Is(err, services.ErrAddressNotFound) {
		writeError(w, r, http.StatusNotFound, "could not find coordinates for the given address")
		return
	}
	if err != nil {
		obs.Logger(r.Context()).Error().Err(err).Msg("find nearby failed")
		writeError(w, r, http.StatusBadGateway, "upstream service error")
		return
	}

	writeJSON(w, r, http.StatusOK, toNearbyResponse(res))
}

func toNearbyResponse(res *services.NearbyResult) dto.NearbyResponse {
	categories := services.GroupByType(res.Places)

	out := dto.NearbyResponse{
		Origin:     dto.OriginResponse{Lat: res.Origin.Lat, Lon: res.Origin.Lon},
		Places:     make([]dto.PlaceResponse, 0, len(res.Places)),
		Categories: make([]dto.CategoryResponse, 0, len(categories)),
		Summary:    report.Summarize(categories),
	}

	for _, rp := range res.Places {
		out.Places = append(out.Places, toPlaceResponse(rp))
	}
	for _, c := range categories {
		out.Categories = append(out.Categories, dto.CategoryResponse{Type: c.Type, Count: len(c.Places)})
	}

	return out
}

func toPlaceResponse(rp domain.RankedPlace) dto.PlaceResponse {
	p := rp.Place
	resp := dto.PlaceResponse{
		PlaceID: p.PlaceID,
		Title:   p.DisplayTitle(),
		Address: p.DisplayAddress(),
		Type:    p.Type,
		Rating:  p.Rating,
		Reviews: p.Reviews,
	}

	if loc, ok := p.Location(); ok {
		resp.Latitude = &loc.Lat
		resp.Longitude = &loc.Lon
	}
	if miles, ok := rp.Distance.Miles(); ok {
		resp.DistanceMiles = &miles
	}

	return resp
}

func valueOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}
