package api

import (
	"nearby-places-service/internal/api/handlers"
	"nearby-places-service/internal/ports"
	"net/http"

	"github.com/rs/cors"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// repo may be nil, in which case /saved-searches is not mounted.
func NewRouter(
	geocoder ports.Geocoder,
	searcher ports.LocalSearcher,
	repo ports.SavedSearchRepository,
	defaults handlers.SearchDefaults,
) http.Handler {
	mux := http.NewServeMux()

	nearbyHandler := &handlers.NearbyHandler{
		Geocoder: geocoder,
		Searcher: searcher,
		Defaults: defaults,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/nearby", nearbyHandler.Nearby)

	if repo != nil {
		savedHandler := &handlers.SavedSearchHandler{Repo: repo}
		mux.HandleFunc("/saved-searches", savedHandler.List)
	}

	// Browser clients on any origin may call the read-only endpoints.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})

	return loggingMiddleware(corsHandler.Handler(mux))
}
