package main

import (
	"context"
	"database/sql"
	"nearby-places-service/internal/adapters/repositories"
	"nearby-places-service/internal/config"
	"nearby-places-service/internal/platform/db"
	"nearby-places-service/internal/platform/obs"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadDotEnv()
	obs.InitLogger(os.Stderr, "dbtool", config.Get("APP_ENV", "development"), config.Get("LOG_LEVEL", "info"))

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	ctx := obs.NewRun(context.Background())

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database setup failed")
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/saved_searches.json")
	if err := initAndSeed(ctx, conn, seedPath); err != nil {
		log.Fatal().Err(err).Msg("init and seed failed")
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	logger := obs.Logger(ctx)

	logger.Info().Msg("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	logger.Info().Msg("Schema ready.")

	logger.Info().Str("path", seedPath).Msg("Seeding database...")
	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		return err
	}
	logger.Info().Msg("Seeding complete.")

	return nil
}
