package commit_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commitflow "github.com/bkyoung/micro-commit/internal/usecase/commit"
)

func TestIOPrompter_CommitMessage(t *testing.T) {
	var out bytes.Buffer
	p := commitflow.NewIOPrompter(strings.NewReader("  fix parser boundary  \n"), &out)

	msg, err := p.CommitMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fix parser boundary", msg)
	assert.Contains(t, out.String(), "Commit message:")
}

func TestIOPrompter_CommitMessageAtEOF(t *testing.T) {
	var out bytes.Buffer
	p := commitflow.NewIOPrompter(strings.NewReader("no trailing newline"), &out)

	msg, err := p.CommitMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "no trailing newline", msg)
}

func TestIOPrompter_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase yes", "YES\n", true},
		{"n", "n\n", false},
		{"empty defaults to no", "\n", false},
		{"garbage defaults to no", "maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := commitflow.NewIOPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm(context.Background(), "Commit anyway?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Commit anyway? [y/N]:")
		})
	}
}
