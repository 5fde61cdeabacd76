// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a local SQLite log of tool invocations: which
// operation ran, with what criteria, how many records matched, and how
// long it took. It is a request log, not a result cache; no upstream
// data is stored or reused.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/grant-reporter/internal/criteria"
)

// Store manages the invocation log database.
type Store struct {
	db *sql.DB
}

// Entry is one logged invocation.
type Entry struct {
	ID        int64
	Tool      string
	Criteria  string
	Total     int
	Seconds   float64
	Timestamp time.Time
}

// Open opens or creates the invocation log at path, creating the
// schema and parent directory as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS invocations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tool TEXT NOT NULL,
		criteria TEXT NOT NULL,
		total INTEGER NOT NULL,
		seconds REAL NOT NULL,
		timestamp TEXT NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record logs one completed invocation. Criteria are stored as their
// wire-format JSON so entries are readable without the binary.
func (s *Store) Record(ctx context.Context, tool string, crit criteria.SearchCriteria, total int, seconds float64) error {
	payload, err := json.Marshal(crit.ToAPICriteria())
	if err != nil {
		return fmt.Errorf("encoding criteria: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO invocations (tool, criteria, total, seconds, timestamp) VALUES (?, ?, ?, ?, ?)`,
		tool, string(payload), total, seconds, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting invocation: %w", err)
	}
	return nil
}

// Recent returns the latest n invocations, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		n = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tool, criteria, total, seconds, timestamp
		 FROM invocations ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying invocations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &e.Tool, &e.Criteria, &e.Total, &e.Seconds, &ts); err != nil {
			return nil, fmt.Errorf("scanning invocation: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
			e.Timestamp = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
