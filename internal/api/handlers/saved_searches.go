package handlers

import (
	"nearby-places-service/internal/api/dto"
	"nearby-places-service/internal/platform/obs"
	"nearby-places-service/internal/ports"
	"net/http"
)

// SavedSearchHandler exposes read-only saved search retrieval endpoints.
type SavedSearchHandler struct {
	Repo ports.SavedSearchRepository
}

func (h *SavedSearchHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	searches, err := h.Repo.ListSavedSearches(r.Context())
	if err != nil {
		obs.Logger(r.Context()).Error().Err(err).Msg("list saved searches failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSavedSearchesResponse{
		SavedSearches: make([]dto.SavedSearchResponse, 0, len(searches)),
	}
	for _, s := range searches {
		res.SavedSearches = append(res.SavedSearches, dto.SavedSearchResponse{
			SearchID: s.ID,
			Address:  s.Address,
			Query:    s.Query,
			Location: s.Location,
			Zoom:     s.Zoom,
			Locale:   s.Locale,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
