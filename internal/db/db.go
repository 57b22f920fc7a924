// Package db provides PostgreSQL persistence for tracked jobs and their resumes.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the tables this service needs if they do not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id                   UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title                TEXT NOT NULL,
		company              TEXT NOT NULL DEFAULT '',
		description          TEXT NOT NULL DEFAULT '',
		keywords             JSONB NOT NULL DEFAULT '[]',
		resume_keywords      JSONB NOT NULL DEFAULT '[]',
		resume_text          TEXT NOT NULL DEFAULT '',
		original_resume_text TEXT NOT NULL DEFAULT '',
		score                DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_updated_at ON jobs (updated_at DESC)`,
}
