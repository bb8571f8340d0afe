// internal/db/db.go
package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/spocklabs/spock-admin/internal/config"
)

// DB wraps the Postgres connection pool. It is constructed once in main and
// handed to the repositories; nothing in the application reaches for a
// package-level connection.
type DB struct {
	Postgres *sqlx.DB
}

// New connects to PostgreSQL and verifies the connection.
func New(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	postgres, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	postgres.SetMaxOpenConns(cfg.MaxConns)
	postgres.SetMaxIdleConns(cfg.MinConns)
	postgres.SetConnMaxLifetime(time.Hour)

	if err := postgres.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	log.Println("✅ Connected to database")

	return &DB{Postgres: postgres}, nil
}

// Close closes the connection pool.
func (d *DB) Close() error {
	return d.Postgres.Close()
}
