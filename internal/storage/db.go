// Package storage persists the workspace project registry in SQLite.
// The registry maps registered project roots to their descriptors; query
// resolution looks projects up by root containment, never by name.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"depnav/internal/logging"
)

// DB represents a registry database connection
type DB struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// Open opens or creates the registry database at <home>/registry.db,
// creating the home directory and schema when missing.
func Open(home string, logger *logging.Logger) (*DB, error) {
	if err := os.MkdirAll(home, 0755); err != nil {
		return nil, fmt.Errorf("failed to create workspace home: %w", err)
	}
	dbPath := filepath.Join(home, "registry.db")

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",   // Write-Ahead Logging for better concurrency
		"PRAGMA synchronous=NORMAL", // Balance between safety and performance
		"PRAGMA foreign_keys=ON",    // Enable foreign key constraints
		"PRAGMA busy_timeout=5000",  // Wait up to 5 seconds on lock
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	db := &DB{conn: conn, logger: logger, dbPath: dbPath}
	if err := db.initSchema(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) initSchema() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS projects (
			key             TEXT PRIMARY KEY,
			uri             TEXT NOT NULL,
			root_path       TEXT NOT NULL,
			descriptor_path TEXT NOT NULL,
			registered_at   TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_projects_root ON projects(root_path);
	`)
	if err != nil {
		return fmt.Errorf("failed to initialize registry schema: %w", err)
	}
	return nil
}

// Path returns the on-disk location of the registry database.
func (db *DB) Path() string {
	return db.dbPath
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
