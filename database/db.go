package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DriverCGO is the mattn/go-sqlite3 driver
	DriverCGO = "sqlite3"
	// DriverPure is the modernc.org/sqlite driver
	DriverPure = "sqlite"
)

type DB struct {
	*sql.DB
}

func New(driver, dbPath string) (*DB, error) {
	dsn, err := buildDSN(driver, dbPath)
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open(sqlDriverName(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &DB{db}, nil
}

// buildDSN adds the per-connection pragmas. foreign_keys and busy_timeout are
// connection-scoped in SQLite, so they go in the DSN rather than a one-off Exec.
func buildDSN(driver, dbPath string) (string, error) {
	switch driver {
	case DriverCGO:
		return "file:" + dbPath + "?_foreign_keys=on&_busy_timeout=5000", nil
	case DriverPure:
		return "file:" + dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

func (db *DB) Migrate() error {
	queries := []string{
		// Notes table
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,

		// Action items table
		`CREATE TABLE IF NOT EXISTS action_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			note_id INTEGER,
			description TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			FOREIGN KEY (note_id) REFERENCES notes(id) ON DELETE SET NULL
		)`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_action_items_note ON action_items(note_id)`,
		`CREATE INDEX IF NOT EXISTS idx_action_items_completed ON action_items(completed)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// Ping verifies the database is reachable
func (db *DB) Ping(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}

func (db *DB) Close() error {
	return db.DB.Close()
}
