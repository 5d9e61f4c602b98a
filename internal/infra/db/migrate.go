package db

import (
	"context"
	"database/sql"
	"fmt"
)

var postgresSchema = []string{
	`
CREATE TABLE IF NOT EXISTS authors (
    id           BIGSERIAL PRIMARY KEY,
    name         TEXT NOT NULL,
    phone_number VARCHAR(10),
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_authors_name ON authors(name)`,
	`
CREATE TABLE IF NOT EXISTS posts (
    id         BIGSERIAL PRIMARY KEY,
    title      TEXT NOT NULL,
    content    TEXT,
    summary    VARCHAR(250),
    category   VARCHAR(20) NOT NULL CHECK (category IN ('Fiction', 'Non-Fiction')),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_category ON posts(category)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at DESC)`,
}

// SQLite stores timestamps as unix milliseconds.
var sqliteSchema = []string{
	`
CREATE TABLE IF NOT EXISTS authors (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    name         TEXT NOT NULL,
    phone_number TEXT,
    created_at   INTEGER NOT NULL,
    updated_at   INTEGER NOT NULL
)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_authors_name ON authors(name)`,
	`
CREATE TABLE IF NOT EXISTS posts (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    title      TEXT NOT NULL,
    content    TEXT,
    summary    TEXT,
    category   TEXT NOT NULL CHECK (category IN ('Fiction', 'Non-Fiction')),
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_category ON posts(category)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at DESC)`,
}

// MigrateUp creates the authors and posts tables and their indexes if they
// do not exist. It is idempotent.
func MigrateUp(ctx context.Context, db *sql.DB, driver Driver) error {
	var stmts []string
	switch driver {
	case DriverPostgres:
		stmts = postgresSchema
	case DriverSQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("MigrateUp: unsupported database driver %q", string(driver))
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
