package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkyoung/micro-commit/internal/diff"
	"github.com/bkyoung/micro-commit/internal/domain"
)

func TestSummarizeFiles(t *testing.T) {
	hunks := []diff.Hunk{
		{FilePath: "b.go", Body: []string{"+one", "+two", "-three"}},
		{FilePath: "a.go", Body: []string{"+one", " context"}},
		{FilePath: "b.go", Body: []string{"+four", " context"}},
	}

	summaries := domain.SummarizeFiles(hunks, domain.DefaultSizeBand())
	require.Len(t, summaries, 2)

	// Sorted by path.
	assert.Equal(t, "a.go", summaries[0].Path)
	assert.Equal(t, 1, summaries[0].HunkCount)
	assert.Equal(t, 1, summaries[0].ChangedLines)
	assert.False(t, summaries[0].WithinBand)

	assert.Equal(t, "b.go", summaries[1].Path)
	assert.Equal(t, 2, summaries[1].HunkCount)
	assert.Equal(t, 4, summaries[1].ChangedLines)
	assert.True(t, summaries[1].WithinBand)
}

func TestSummarizeFiles_SkipsPathlessHunks(t *testing.T) {
	hunks := []diff.Hunk{
		{FilePath: "", Body: []string{"+stray"}},
	}

	assert.Empty(t, domain.SummarizeFiles(hunks, domain.DefaultSizeBand()))
}
