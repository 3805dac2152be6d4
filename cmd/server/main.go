package main

import (
	"context"
	"database/sql"
	"nearby-places-service/internal/adapters/geocode"
	"nearby-places-service/internal/adapters/repositories"
	"nearby-places-service/internal/adapters/search"
	"nearby-places-service/internal/api"
	"nearby-places-service/internal/api/handlers"
	"nearby-places-service/internal/config"
	"nearby-places-service/internal/platform/db"
	"nearby-places-service/internal/platform/obs"
	"nearby-places-service/internal/ports"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, SerpApi, Postgres) behind ports and starts the HTTP server.
func main() {
	config.LoadDotEnv()
	obs.InitLogger(os.Stderr, "nearby-server", config.Get("APP_ENV", "development"), config.Get("LOG_LEVEL", "info"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	geocoder, err := geocode.NewNominatimGeocoder(cfg.NominatimURL, cfg.UserAgent, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("geocoder setup failed")
	}

	searcher, err := search.NewSerpAPISearcher(cfg.SerpAPIKey, cfg.SerpAPIURL, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("local search setup failed")
	}

	// Saved searches are optional for the HTTP surface.
	var repo ports.SavedSearchRepository
	if cfg.DatabaseURL != "" {
		var conn *sql.DB
		conn, err = db.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("database setup failed")
		}
		defer conn.Close()
		repo = repositories.NewPostgresSavedSearchRepository(conn)
	}

	zoom, err := strconv.Atoi(config.Get("DEFAULT_ZOOM", "15"))
	if err != nil {
		log.Fatal().Err(err).Msg("DEFAULT_ZOOM must be an integer")
	}

	defaults := handlers.SearchDefaults{
		Query:    config.Get("DEFAULT_QUERY", "Restaurants"),
		Location: config.Get("DEFAULT_LOCATION", ""),
		Zoom:     zoom,
		Locale:   config.Get("DEFAULT_LOCALE", "en"),
	}

	router := api.NewRouter(geocoder, searcher, repo, defaults)

	// Write timeout covers one geocode plus one search round trip.
	log.Info().Str("addr", ":"+cfg.Port).Msg("Server listening")
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
