package cli_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkyoung/micro-commit/internal/adapter/cli"
	"github.com/bkyoung/micro-commit/internal/store"
	"github.com/bkyoung/micro-commit/internal/usecase/commit"
)

type fakeWorkflow struct {
	runs     []commit.RunRequest
	statuses int
	history  []store.CommitRecord
}

func (f *fakeWorkflow) Run(ctx context.Context, req commit.RunRequest) error {
	f.runs = append(f.runs, req)
	return nil
}

func (f *fakeWorkflow) Status(ctx context.Context) error {
	f.statuses++
	return nil
}

func (f *fakeWorkflow) History(ctx context.Context, limit int) ([]store.CommitRecord, error) {
	if limit > 0 && limit < len(f.history) {
		return f.history[:limit], nil
	}
	return f.history, nil
}

func execute(t *testing.T, workflow cli.Workflow, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCommand(cli.Dependencies{
		Workflow: workflow,
		Args:     cli.Arguments{OutWriter: &out, ErrWriter: &out},
		Version:  "v1.2.3",
	})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Version(t *testing.T) {
	out, err := execute(t, &fakeWorkflow{}, "--version")
	require.ErrorIs(t, err, cli.ErrVersionRequested)
	assert.Contains(t, out, "v1.2.3")
}

func TestRootCommand_RunFlags(t *testing.T) {
	workflow := &fakeWorkflow{}

	_, err := execute(t, workflow, "run", "--dry-run", "--no-push")
	require.NoError(t, err)

	require.Len(t, workflow.runs, 1)
	assert.True(t, workflow.runs[0].DryRun)
	assert.True(t, workflow.runs[0].NoPush)
}

func TestRootCommand_RunDefaults(t *testing.T) {
	workflow := &fakeWorkflow{}

	_, err := execute(t, workflow, "run")
	require.NoError(t, err)

	require.Len(t, workflow.runs, 1)
	assert.False(t, workflow.runs[0].DryRun)
	assert.False(t, workflow.runs[0].NoPush)
}

func TestRootCommand_Status(t *testing.T) {
	workflow := &fakeWorkflow{}

	_, err := execute(t, workflow, "status")
	require.NoError(t, err)
	assert.Equal(t, 1, workflow.statuses)
}

func TestRootCommand_History(t *testing.T) {
	workflow := &fakeWorkflow{history: []store.CommitRecord{
		{
			Timestamp:  time.Date(2025, 8, 30, 9, 15, 0, 0, time.UTC),
			Branch:     "main",
			Message:    "fix parser boundary",
			Files:      1,
			Added:      4,
			Deleted:    2,
			WithinBand: true,
		},
	}}

	out, err := execute(t, workflow, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "✅ 2025-08-30 09:15  main  fix parser boundary (files=1, +4 -2)")
}

func TestRootCommand_HistoryEmpty(t *testing.T) {
	out, err := execute(t, &fakeWorkflow{}, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No commits recorded yet.")
}
