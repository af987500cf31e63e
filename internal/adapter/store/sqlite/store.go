package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/bkyoung/micro-commit/internal/store"
)

// Store implements the store.Store interface using SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a new SQLite store at the given path.
// Use ":memory:" for an in-memory database (useful for testing).
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}

	if err := s.createSchema(); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return s, nil
}

func (s *Store) createSchema() error {
	schema := `
	-- One row per commit made through the workflow
	CREATE TABLE IF NOT EXISTS commits (
		commit_id TEXT PRIMARY KEY,
		timestamp INTEGER NOT NULL,
		branch TEXT NOT NULL,
		message TEXT NOT NULL,
		files INTEGER NOT NULL,
		added INTEGER NOT NULL,
		deleted INTEGER NOT NULL,
		within_band INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_commits_timestamp ON commits(timestamp);
	CREATE INDEX IF NOT EXISTS idx_commits_branch ON commits(branch);
	`

	_, err := s.db.Exec(schema)
	return err
}

// RecordCommit inserts a ledger entry for a completed commit.
func (s *Store) RecordCommit(ctx context.Context, record store.CommitRecord) error {
	query := `
	INSERT INTO commits (commit_id, timestamp, branch, message, files, added, deleted, within_band)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.Timestamp.Unix(),
		record.Branch,
		record.Message,
		record.Files,
		record.Added,
		record.Deleted,
		boolToInt(record.WithinBand),
	)
	if err != nil {
		return fmt.Errorf("failed to record commit: %w", err)
	}
	return nil
}

// ListCommits returns the most recent ledger entries, newest first.
// A non-positive limit returns everything.
func (s *Store) ListCommits(ctx context.Context, limit int) ([]store.CommitRecord, error) {
	query := `
	SELECT commit_id, timestamp, branch, message, files, added, deleted, within_band
	FROM commits
	ORDER BY timestamp DESC, commit_id DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}
	defer rows.Close()

	var records []store.CommitRecord
	for rows.Next() {
		var r store.CommitRecord
		var ts int64
		var withinBand int
		if err := rows.Scan(&r.ID, &ts, &r.Branch, &r.Message, &r.Files, &r.Added, &r.Deleted, &withinBand); err != nil {
			return nil, fmt.Errorf("failed to scan commit: %w", err)
		}
		r.Timestamp = time.Unix(ts, 0).UTC()
		r.WithinBand = withinBand != 0
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate commits: %w", err)
	}

	return records, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
