package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL CHECK (char_length(name) BETWEEN 1 AND 200),
    name_key    TEXT NOT NULL,
    image       TEXT NOT NULL,
    instagram   TEXT,
    has_pool    BOOLEAN NOT NULL DEFAULT FALSE,
    hours       TEXT NOT NULL,
    phones      TEXT[] NOT NULL CHECK (cardinality(phones) > 0),
    email       TEXT,
    categories  TEXT[] NOT NULL CHECK (cardinality(categories) > 0),
    location    TEXT NOT NULL,
    comments    TEXT NOT NULL,
    rating      DOUBLE PRECISION CHECK (rating BETWEEN 0 AND 5),
    cuisine     TEXT,
    created_at  TIMESTAMPTZ NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL,
    CHECK (updated_at >= created_at)
  )`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_restaurants_name_key ON restaurants (name_key)`,
	`CREATE INDEX IF NOT EXISTS idx_restaurants_name ON restaurants (name COLLATE "C", id COLLATE "C")`,
	`CREATE INDEX IF NOT EXISTS idx_restaurants_categories ON restaurants USING GIN (categories)`,
	`CREATE INDEX IF NOT EXISTS idx_restaurants_rating ON restaurants (rating)`,
	`CREATE INDEX IF NOT EXISTS idx_restaurants_has_pool ON restaurants (has_pool)`,
}

// EnsureSchema creates the restaurants table and its indexes if missing.
// It is idempotent and never alters an existing table.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	log.Info().Int("statements", len(schemaStatements)).Msg("[DATABASE] schema ensured")
	return nil
}
