package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver
)

// Open opens the sqlite file at path and checks it is reachable. The returned
// pool is shared by all repos and owned by the caller.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	const op = "sqlite.Open"

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return db, nil
}

// Bootstrap creates the identity table if it doesn't already exist.
// Safe to call on every startup.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS user (
			id       TEXT PRIMARY KEY,
			cpr      TEXT NOT NULL,
			nemid    TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("sqlite.Bootstrap: %w", err)
	}
	return nil
}
