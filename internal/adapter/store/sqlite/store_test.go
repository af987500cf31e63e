package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkyoung/micro-commit/internal/adapter/store/sqlite"
	"github.com/bkyoung/micro-commit/internal/store"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RecordAndListCommits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	older := store.CommitRecord{
		ID:         "commit-20250829T100000Z-aaaaaa",
		Timestamp:  time.Date(2025, 8, 29, 10, 0, 0, 0, time.UTC),
		Branch:     "main",
		Message:    "tighten parser boundary handling",
		Files:      1,
		Added:      4,
		Deleted:    2,
		WithinBand: true,
	}
	newer := store.CommitRecord{
		ID:        "commit-20250830T090000Z-bbbbbb",
		Timestamp: time.Date(2025, 8, 30, 9, 0, 0, 0, time.UTC),
		Branch:    "feature/preview",
		Message:   "add hunk preview truncation",
		Files:     2,
		Added:     12,
		Deleted:   3,
	}

	require.NoError(t, s.RecordCommit(ctx, older))
	require.NoError(t, s.RecordCommit(ctx, newer))

	records, err := s.ListCommits(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, older.ID, records[1].ID)

	assert.Equal(t, "main", records[1].Branch)
	assert.Equal(t, 6, records[1].Changed())
	assert.True(t, records[1].WithinBand)
	assert.False(t, records[0].WithinBand)
	assert.Equal(t, older.Timestamp, records[1].Timestamp)
}

func TestStore_ListCommitsRespectsLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		record := store.CommitRecord{
			ID:        store.GenerateCommitID(base.Add(time.Duration(i)*time.Minute), "main", "msg"),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Branch:    "main",
			Message:   "msg",
			Files:     1,
			Added:     3,
		}
		require.NoError(t, s.RecordCommit(ctx, record))
	}

	records, err := s.ListCommits(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestStore_ListCommitsEmpty(t *testing.T) {
	s := newTestStore(t)

	records, err := s.ListCommits(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
