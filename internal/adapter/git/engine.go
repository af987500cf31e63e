package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	goGit "github.com/go-git/go-git/v5"

	"github.com/bkyoung/micro-commit/internal/adapter/runner"
	"github.com/bkyoung/micro-commit/internal/domain"
)

// contextLines is passed to `git diff --unified=N`; three lines of context
// keeps hunks readable in previews.
const contextLines = 3

// Engine drives the git binary through a command runner, with go-git for
// repository introspection that needs no subprocess.
type Engine struct {
	repoDir string
	runner  runner.Runner
}

// NewEngine constructs a git engine for the provided repository directory.
func NewEngine(repoDir string, r runner.Runner) *Engine {
	return &Engine{repoDir: repoDir, runner: r}
}

// IsRepository reports whether repoDir is inside a git work tree.
func (e *Engine) IsRepository() bool {
	_, err := goGit.PlainOpenWithOptions(e.repoDir, &goGit.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// CurrentBranch returns the name of the checked-out branch.
func (e *Engine) CurrentBranch(ctx context.Context) (string, error) {
	repo, err := goGit.PlainOpenWithOptions(e.repoDir, &goGit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repo: %w", err)
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	name := head.Name()
	if name.IsBranch() {
		return name.Short(), nil
	}
	return "", fmt.Errorf("detached HEAD")
}

// WorkingDiff returns the unified diff of unstaged working-tree changes.
func (e *Engine) WorkingDiff(ctx context.Context) (string, error) {
	out, err := e.git(ctx, "diff", fmt.Sprintf("--unified=%d", contextLines))
	if err != nil {
		return "", fmt.Errorf("working diff: %w", err)
	}
	return out, nil
}

// StagedNumstat returns the per-file added/deleted counts for staged
// changes. These are the authoritative counts for what a commit would
// contain; rows that do not parse (e.g. binary files reported as "-") are
// skipped.
func (e *Engine) StagedNumstat(ctx context.Context) ([]domain.NumstatRow, error) {
	out, err := e.git(ctx, "diff", "--cached", "--numstat")
	if err != nil {
		return nil, fmt.Errorf("staged numstat: %w", err)
	}
	return parseNumstat(out), nil
}

// HasStagedChanges reports whether anything is staged for commit.
func (e *Engine) HasStagedChanges(ctx context.Context) (bool, error) {
	out, err := e.git(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return false, fmt.Errorf("staged names: %w", err)
	}
	return strings.TrimSpace(out) != "", nil
}

// StagePatchInteractive opens git's interactive patch selection for one
// file, attached to the user's terminal. Hunk-level selection and splitting
// are delegated entirely to git.
func (e *Engine) StagePatchInteractive(ctx context.Context, path string) error {
	if err := e.runner.RunInteractive(ctx, "git", "-C", e.repoDir, "add", "-p", "--", path); err != nil {
		return fmt.Errorf("interactive staging for %s: %w", path, err)
	}
	return nil
}

// Commit records the staged changes with the given message.
func (e *Engine) Commit(ctx context.Context, message string) error {
	if _, err := e.git(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Push pushes the branch to the remote, setting the upstream on first push.
func (e *Engine) Push(ctx context.Context, remote, branch string) error {
	if _, err := e.git(ctx, "push", "-u", remote, branch); err != nil {
		return fmt.Errorf("push %s/%s: %w", remote, branch, err)
	}
	return nil
}

func (e *Engine) git(ctx context.Context, args ...string) (string, error) {
	fullArgs := append([]string{"-C", e.repoDir}, args...)
	return e.runner.Run(ctx, "git", fullArgs...)
}

// parseNumstat parses `git diff --numstat` output into rows, skipping
// anything that is not three tab-separated columns with integer counts.
func parseNumstat(out string) []domain.NumstatRow {
	var rows []domain.NumstatRow
	for _, line := range strings.Split(out, "\n") {
		cols := strings.Split(line, "\t")
		if len(cols) != 3 {
			continue
		}
		added, err := strconv.Atoi(cols[0])
		if err != nil {
			continue
		}
		deleted, err := strconv.Atoi(cols[1])
		if err != nil {
			continue
		}
		rows = append(rows, domain.NumstatRow{Added: added, Deleted: deleted, Path: cols[2]})
	}
	return rows
}
