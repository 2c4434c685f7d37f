// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite log of conversion runs.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/doc-converter/pkg/types"
)

const dbFile = "history.db"

// defaultLimit bounds List when the caller passes no limit.
const defaultLimit = 20

// timeLayout is fixed width so that converted_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one stored conversion run.
type Entry struct {
	ID string `json:"id" yaml:"id"`
	types.ConversionResult `yaml:",inline"`
}

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates dir/history.db and its schema.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
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
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			output TEXT,
			status TEXT NOT NULL,
			blocks INTEGER,
			tables INTEGER,
			error TEXT,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_converted_at ON runs(converted_at)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one conversion result under a fresh ID.
func (s *Store) Record(ctx context.Context, r types.ConversionResult) error {
	at := r.ConvertedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, source, output, status, blocks, tables, error, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), r.Source, r.Output, string(r.Status),
		r.Blocks, r.Tables, r.Error, at.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting run for %s: %w", r.Source, err)
	}
	return nil
}

// List returns up to limit runs, newest first. A non-positive limit means
// the default of 20.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, output, status, blocks, tables, error, converted_at
		 FROM runs ORDER BY converted_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e      Entry
			status string
			at     string
			output sql.NullString
			errMsg sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Source, &output, &status, &e.Blocks, &e.Tables, &errMsg, &at); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		e.Output = output.String
		e.Error = errMsg.String
		e.Status = types.ConversionStatus(status)
		if e.ConvertedAt, err = time.Parse(timeLayout, at); err != nil {
			return nil, fmt.Errorf("parsing converted_at for %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
