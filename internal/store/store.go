// Package store provides read and write access to the cozyreq SQLite
// database that holds agent runs, tool calls, and logs.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrRunNotFound is returned when a requested run does not exist.
var ErrRunNotFound = errors.New("store: run not found")

// DB wraps the SQLite connection.
type DB struct {
	db *sql.DB
}

// Open connects to an existing database file. It fails if the file does
// not exist; use Init to create a new database.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("store: database file not found: %s", path)
	}
	return open(path)
}

// Init creates the database file and schema, creating parent directories
// as needed. It is safe to call on an existing database.
func Init(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("store: create database directory: %w", err)
	}
	db, err := open(path)
	if err != nil {
		return nil, err
	}
	if err := db.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	// modernc.org/sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY between the reader and the recording agent.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: connect to database: %w", err)
	}
	return &DB{db: db}, nil
}

// Close releases the underlying connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS agent_runs (
			id TEXT PRIMARY KEY,
			run_number INTEGER NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT,
			status TEXT NOT NULL CHECK(status IN ('running', 'completed', 'failed')),
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			UNIQUE(run_number)
		)`,
		`CREATE TABLE IF NOT EXISTS tool_calls (
			id TEXT PRIMARY KEY,
			run_id TEXT NOT NULL,
			sequence_number INTEGER NOT NULL,
			tool_name TEXT NOT NULL,
			status TEXT NOT NULL CHECK(status IN ('queued', 'running', 'success', 'failed')),
			timestamp TEXT NOT NULL,
			duration REAL,
			request TEXT NOT NULL,
			response TEXT,
			size INTEGER,
			summary TEXT NOT NULL,
			result_summary TEXT,
			FOREIGN KEY (run_id) REFERENCES agent_runs(id) ON DELETE CASCADE,
			UNIQUE(run_id, sequence_number)
		)`,
		`CREATE TABLE IF NOT EXISTS logs (
			id TEXT PRIMARY KEY,
			run_id TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			log_type TEXT NOT NULL CHECK(log_type IN ('INFO', 'TOOL', 'ERROR', 'DEBUG')),
			message TEXT NOT NULL,
			metadata TEXT,
			FOREIGN KEY (run_id) REFERENCES agent_runs(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tool_calls_run_id ON tool_calls(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tool_calls_sequence ON tool_calls(run_id, sequence_number)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_run_id ON logs(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_type ON logs(run_id, log_type)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_timestamp ON logs(run_id, timestamp)`,
	}
	for _, stmt := range stmts {
		if _, err := d.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: initialize schema: %w", err)
		}
	}
	return nil
}
