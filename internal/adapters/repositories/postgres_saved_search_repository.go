package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"nearby-places-service/internal/domain"
	"nearby-places-service/internal/platform/obs"
)

// Postgres-backed implementation of the SavedSearchRepository port.
type PostgresSavedSearchRepository struct{ DB *sql.DB }

func NewPostgresSavedSearchRepository(db *sql.DB) *PostgresSavedSearchRepository {
	return &PostgresSavedSearchRepository{DB: db}
}

// Return all saved searches ordered by id.
func (s *PostgresSavedSearchRepository) ListSavedSearches(ctx context.Context) (_ []*domain.SavedSearch, err error) {
	defer obs.Time(ctx, "saved_searches.List")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres saved search repository: DB is nil")
	}

	query := `
	SELECT
		search_id,
		address,
		query,
		location,
		zoom,
		locale
	FROM saved_searches
	ORDER BY search_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list saved searches: query saved_searches table: %w", err)
	}
	defer rows.Close()

	searches := make([]*domain.SavedSearch, 0, 16)
	for rows.Next() {
		var ss domain.SavedSearch
		err := rows.Scan(&ss.ID, &ss.Address, &ss.Query, &ss.Location, &ss.Zoom, &ss.Locale)
		if err != nil {
			return nil, fmt.Errorf("list saved searches: scan row: %w", err)
		}
		searches = append(searches, &ss)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list saved searches: row iteration: %w", err)
	}

	return searches, nil
}
