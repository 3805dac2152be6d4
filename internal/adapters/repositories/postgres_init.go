package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the Postgres schema for saved searches.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSavedSearchesQuery := `
	CREATE TABLE IF NOT EXISTS saved_searches (
		search_id INTEGER PRIMARY KEY,
		address TEXT NOT NULL,
		query TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		zoom INTEGER NOT NULL DEFAULT 15,
		locale TEXT NOT NULL DEFAULT 'en'
	);
	`

	statements := []string{
		createSavedSearchesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type SavedSearchSeed struct {
	SearchID int    `json:"search_id"`
	Address  string `json:"address"`
	Query    string `json:"query"`
	Location string `json:"location"`
	Zoom     int    `json:"zoom"`
	Locale   string `json:"locale"`
}

// Populate the database with saved searches from a JSON file.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed saved searches: read %q: %w", jsonPath, err)
	}

	rows, err := parseSeeds(bytes)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed saved searches: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO saved_searches (search_id, address, query, location, zoom, locale)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (search_id) DO UPDATE
	SET address = EXCLUDED.address,
		query = EXCLUDED.query,
		location = EXCLUDED.location,
		zoom = EXCLUDED.zoom,
		locale = EXCLUDED.locale;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed saved searches: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		if _, err := stmt.ExecContext(ctx, s.SearchID, s.Address, s.Query, s.Location, s.Zoom, s.Locale); err != nil {
			return fmt.Errorf("seed saved searches: insert search_id=%d: %w", s.SearchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed saved searches: commit tx: %w", err)
	}

	return nil
}

// parseSeeds validates seed rows and fills zoom and locale defaults.
func parseSeeds(raw []byte) ([]SavedSearchSeed, error) {
	var data []SavedSearchSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("seed saved searches: parse json: %w", err)
	}

	rows := make([]SavedSearchSeed, 0, len(data))
	for i, item := range data {
		if item.SearchID <= 0 {
			return nil, fmt.Errorf("seed saved searches: invalid search_id at index %d: %d", i+1, item.SearchID)
		}

		addr := strings.TrimSpace(item.Address)
		if addr == "" {
			return nil, fmt.Errorf("seed saved searches: item at index %d: address cannot be empty", i+1)
		}

		query := strings.TrimSpace(item.Query)
		if query == "" {
			return nil, fmt.Errorf("seed saved searches: item at index %d: query cannot be empty", i+1)
		}

		zoom := item.Zoom
		if zoom == 0 {
			zoom = 15
		}
		locale := strings.TrimSpace(item.Locale)
		if locale == "" {
			locale = "en"
		}

		rows = append(rows, SavedSearchSeed{
			SearchID: item.SearchID,
			Address:  addr,
			Query:    query,
			Location: strings.TrimSpace(item.Location),
			Zoom:     zoom,
			Locale:   locale,
		})
	}

	return rows, nil
}
