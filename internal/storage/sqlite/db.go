// Package sqlite persists token balances and generation statistics in a
// local SQLite database. It backs single-instance deployments and tests.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"
)

const memoryPath = ":memory:"

// DB wraps the SQL database connection.
type DB struct {
	*sql.DB
	path string
}

// Open opens the database at path and creates the schema.
func Open(ctx context.Context, path string) (*DB, error) {
	if path != memoryPath {
		dir := filepath.Dir(path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	sqlDB, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if path == memoryPath {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{DB: sqlDB, path: path}

	if err := db.createSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// dsn attaches per-connection pragmas so every pooled connection gets them.
func dsn(path string) string {
	pragmas := []string{
		"_pragma=busy_timeout(5000)",
		"_pragma=synchronous(NORMAL)",
		"_pragma=foreign_keys(ON)",
	}
	if path != memoryPath {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)")
	}
	return "file:" + path + "?" + strings.Join(pragmas, "&")
}

func (db *DB) createSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS user_token_balance (
			user_id       INTEGER PRIMARY KEY,
			tariff_tokens INTEGER NOT NULL DEFAULT 0 CHECK (tariff_tokens >= 0),
			extra_tokens  INTEGER NOT NULL DEFAULT 0 CHECK (extra_tokens >= 0),
			updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS generation_stats (
			day          TEXT NOT NULL,
			kind         TEXT NOT NULL,
			detail       TEXT NOT NULL DEFAULT '',
			successful   INTEGER NOT NULL DEFAULT 0,
			unsuccessful INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (day, kind, detail)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
