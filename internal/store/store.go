package store

import (
	"context"
	"time"
)

// Store persists the commit ledger: one record per commit produced through
// the micro-commit workflow, so commit sizes can be reviewed over time.
type Store interface {
	RecordCommit(ctx context.Context, record CommitRecord) error
	ListCommits(ctx context.Context, limit int) ([]CommitRecord, error)
	Close() error
}

// CommitRecord describes one commit made through the workflow.
type CommitRecord struct {
	ID         string
	Timestamp  time.Time
	Branch     string
	Message    string
	Files      int
	Added      int
	Deleted    int
	WithinBand bool
}

// Changed returns the total changed-line count the commit carried.
func (r CommitRecord) Changed() int {
	return r.Added + r.Deleted
}
