package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands. The narrow interface keeps the
// diff-parsing core and the commit workflow testable without a real git
// binary on the path.
type Runner interface {
	// Run executes the command, captures stdout, and folds stderr into
	// the returned error on failure.
	Run(ctx context.Context, name string, args ...string) (string, error)

	// RunInteractive executes the command attached to the caller's
	// stdin/stdout/stderr, for tools that drive their own terminal
	// session (e.g. `git add -p`).
	RunInteractive(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Dir is the working directory for every command ("" uses the
	// process working directory).
	Dir string
}

// NewExecRunner constructs a runner rooted at dir.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{Dir: dir}
}

// Run executes the command and returns captured stdout.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%s %v: %w", name, args, ctx.Err())
		}
		if stderr.Len() > 0 {
			err = fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("%s %v: %w", name, args, err)
	}
	return stdout.String(), nil
}

// RunInteractive executes the command as a terminal pass-through.
func (r *ExecRunner) RunInteractive(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s %v: %w", name, args, ctx.Err())
		}
		return fmt.Errorf("%s %v: %w", name, args, err)
	}
	return nil
}
