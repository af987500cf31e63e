package commit

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bkyoung/micro-commit/internal/diff"
	"github.com/bkyoung/micro-commit/internal/domain"
	"github.com/bkyoung/micro-commit/internal/store"
)

// GitEngine defines the git operations the workflow depends on.
type GitEngine interface {
	CurrentBranch(ctx context.Context) (string, error)
	WorkingDiff(ctx context.Context) (string, error)
	StagedNumstat(ctx context.Context) ([]domain.NumstatRow, error)
	HasStagedChanges(ctx context.Context) (bool, error)
	StagePatchInteractive(ctx context.Context, path string) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context, remote, branch string) error
}

// ReportWriter persists a session report artifact.
type ReportWriter interface {
	Write(ctx context.Context, report domain.SessionReport) (string, error)
}

// Logger is the minimal structured logging surface the workflow uses.
type Logger interface {
	Info(ctx context.Context, message string, fields map[string]interface{})
	Warn(ctx context.Context, message string, fields map[string]interface{})
}

// PreviewOptions bounds how much of the parsed diff is printed up front.
type PreviewOptions struct {
	MaxHunks int
	MaxLines int
}

// OrchestratorDeps captures the collaborators for the workflow.
// Ledger, Report, and Logger are optional; the rest are required.
type OrchestratorDeps struct {
	Git           GitEngine
	Prompter      Prompter
	Ledger        store.Store
	Report        ReportWriter
	Logger        Logger
	Out           io.Writer
	Band          domain.SizeBand
	Preview       PreviewOptions
	Remote        string
	Repository    string
	ReportDir     string
	Now           func() time.Time
	IsInteractive func() bool
}

// Orchestrator runs the small-commit workflow: survey the working tree,
// stage interactively per file, verify the staged size, commit, push.
type Orchestrator struct {
	deps OrchestratorDeps
}

// NewOrchestrator wires the workflow with its collaborators.
func NewOrchestrator(deps OrchestratorDeps) *Orchestrator {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.IsInteractive == nil {
		deps.IsInteractive = IsInteractive
	}
	if deps.Remote == "" {
		deps.Remote = "origin"
	}
	return &Orchestrator{deps: deps}
}

// RunRequest carries per-invocation options.
type RunRequest struct {
	DryRun bool // Survey only; never touch the index
	NoPush bool // Commit without pushing
}

// Run executes the full workflow. "No changes" and "no hunks" are normal
// outcomes, not errors.
func (o *Orchestrator) Run(ctx context.Context, req RunRequest) error {
	hunks, summaries, err := o.survey(ctx)
	if err != nil || len(hunks) == 0 {
		return err
	}

	if req.DryRun {
		return nil
	}

	if !o.deps.IsInteractive() {
		fmt.Fprintln(o.deps.Out, "\nStdin is not a terminal; skipping interactive staging.")
		o.warn(ctx, "non-interactive stdin, staging skipped", nil)
		return nil
	}

	fmt.Fprintln(o.deps.Out, "\nOpening `git add -p` per file.")
	fmt.Fprintf(o.deps.Out, "Stage only small changes (about %d-%d lines): y=stage / n=skip / s=split / q=quit\n", o.deps.Band.MinLines, o.deps.Band.MaxLines)

	for _, s := range summaries {
		if err := o.deps.Git.StagePatchInteractive(ctx, s.Path); err != nil {
			if ctx.Err() != nil {
				return err
			}
			// An interrupted `git add -p` should not sink the session.
			fmt.Fprintf(o.deps.Out, "warning: interactive staging interrupted for %s\n", s.Path)
			o.warn(ctx, "interactive staging interrupted", map[string]interface{}{"path": s.Path, "error": err.Error()})
		}
	}

	staged, err := o.deps.Git.HasStagedChanges(ctx)
	if err != nil {
		return err
	}
	if !staged {
		fmt.Fprintln(o.deps.Out, "\nNo staged changes. Exiting.")
		return nil
	}

	rows, err := o.deps.Git.StagedNumstat(ctx)
	if err != nil {
		return err
	}
	total := domain.TotalChanged(rows)
	withinBand := o.deps.Band.Contains(total)

	fmt.Fprintf(o.deps.Out, "\nStaged changed lines (added+deleted): %d\n", total)
	if !withinBand {
		question := fmt.Sprintf("Staged total %d is outside the recommended %d-%d band. Commit anyway?",
			total, o.deps.Band.MinLines, o.deps.Band.MaxLines)
		ok, err := o.deps.Prompter.Confirm(ctx, question)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(o.deps.Out, "Aborted. Use `git restore --staged .` to re-adjust.")
			return nil
		}
	}

	fmt.Fprintln(o.deps.Out, "\nStaged files:")
	for _, row := range rows {
		fmt.Fprintf(o.deps.Out, "  - %s: +%d -%d\n", row.Path, row.Added, row.Deleted)
	}

	message, err := o.deps.Prompter.CommitMessage(ctx)
	if err != nil {
		return err
	}
	if message == "" {
		fmt.Fprintln(o.deps.Out, "Empty commit message. Aborting.")
		return nil
	}

	if err := o.deps.Git.Commit(ctx, message); err != nil {
		return err
	}

	branch, err := o.deps.Git.CurrentBranch(ctx)
	if err != nil || branch == "" {
		branch = "main"
	}

	if !req.NoPush {
		if err := o.deps.Git.Push(ctx, o.deps.Remote, branch); err != nil {
			return err
		}
		fmt.Fprintf(o.deps.Out, "\nPushed to %s/%s\n", o.deps.Remote, branch)
	}

	o.recordCommit(ctx, branch, message, rows, withinBand)
	o.writeReport(ctx, branch, message, summaries, rows)

	return nil
}

// Status surveys the working tree without touching the index: hunk count,
// per-file summary, and hunk previews.
func (o *Orchestrator) Status(ctx context.Context) error {
	_, _, err := o.survey(ctx)
	return err
}

// History returns recent ledger entries, newest first.
func (o *Orchestrator) History(ctx context.Context, limit int) ([]store.CommitRecord, error) {
	if o.deps.Ledger == nil {
		return nil, fmt.Errorf("commit ledger is not enabled; set store.enabled in the configuration")
	}
	return o.deps.Ledger.ListCommits(ctx, limit)
}

// survey parses the working diff and prints the summary and previews.
// A nil hunk slice with nil error means there is nothing to do.
func (o *Orchestrator) survey(ctx context.Context) ([]diff.Hunk, []domain.FileSummary, error) {
	out := o.deps.Out

	diffText, err := o.deps.Git.WorkingDiff(ctx)
	if err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(diffText) == "" {
		fmt.Fprintln(out, "No changes in the working tree.")
		return nil, nil, nil
	}

	hunks := diff.Parse(diffText)
	if len(hunks) == 0 {
		fmt.Fprintln(out, "No hunks found. Nothing to do.")
		return nil, nil, nil
	}

	summaries := domain.SummarizeFiles(hunks, o.deps.Band)

	fmt.Fprintf(out, "Detected hunks: %d\n", len(hunks))
	fmt.Fprintf(out, "Recommended commit size: %d-%d changed lines\n\n", o.deps.Band.MinLines, o.deps.Band.MaxLines)

	for _, s := range summaries {
		mark := "⚪"
		if s.WithinBand {
			mark = "✅"
		}
		fmt.Fprintf(out, "%s %s (hunks=%d, approx changed=%d)\n", mark, s.Path, s.HunkCount, s.ChangedLines)
	}

	maxHunks := o.deps.Preview.MaxHunks
	if maxHunks > len(hunks) {
		maxHunks = len(hunks)
	}
	if maxHunks > 0 {
		fmt.Fprintln(out, "\n--- Preview (first hunks) ---")
		for i := 0; i < maxHunks; i++ {
			fmt.Fprintf(out, "\n[%d]\n%s\n", i+1, diff.Preview(hunks[i], o.deps.Preview.MaxLines))
		}
	}

	return hunks, summaries, nil
}

func (o *Orchestrator) recordCommit(ctx context.Context, branch, message string, rows []domain.NumstatRow, withinBand bool) {
	if o.deps.Ledger == nil {
		return
	}

	added, deleted := 0, 0
	for _, r := range rows {
		added += r.Added
		deleted += r.Deleted
	}

	now := o.deps.Now()
	record := store.CommitRecord{
		ID:         store.GenerateCommitID(now, branch, message),
		Timestamp:  now,
		Branch:     branch,
		Message:    message,
		Files:      len(rows),
		Added:      added,
		Deleted:    deleted,
		WithinBand: withinBand,
	}

	if err := o.deps.Ledger.RecordCommit(ctx, record); err != nil {
		// Ledger trouble must not undo a commit that already happened.
		o.warn(ctx, "failed to record commit in ledger", map[string]interface{}{"error": err.Error()})
		return
	}
	o.info(ctx, "commit recorded", map[string]interface{}{"branch": branch, "changed": record.Changed()})
}

func (o *Orchestrator) writeReport(ctx context.Context, branch, message string, summaries []domain.FileSummary, rows []domain.NumstatRow) {
	if o.deps.Report == nil || o.deps.ReportDir == "" {
		return
	}

	path, err := o.deps.Report.Write(ctx, domain.SessionReport{
		OutputDir:  o.deps.ReportDir,
		Repository: o.deps.Repository,
		Branch:     branch,
		Band:       o.deps.Band,
		Summaries:  summaries,
		Staged:     rows,
		Message:    message,
	})
	if err != nil {
		o.warn(ctx, "failed to write session report", map[string]interface{}{"error": err.Error()})
		return
	}
	fmt.Fprintf(o.deps.Out, "Session report written to %s\n", path)
}

func (o *Orchestrator) info(ctx context.Context, message string, fields map[string]interface{}) {
	if o.deps.Logger != nil {
		o.deps.Logger.Info(ctx, message, fields)
	}
}

func (o *Orchestrator) warn(ctx context.Context, message string, fields map[string]interface{}) {
	if o.deps.Logger != nil {
		o.deps.Logger.Warn(ctx, message, fields)
	}
}
