package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bkyoung/micro-commit/internal/store"
	"github.com/bkyoung/micro-commit/internal/usecase/commit"
)

// ErrVersionRequested indicates the user requested the CLI version and no further work should be done.
var ErrVersionRequested = errors.New("version requested")

// Workflow defines the dependency required to run the commands.
type Workflow interface {
	Run(ctx context.Context, req commit.RunRequest) error
	Status(ctx context.Context) error
	History(ctx context.Context, limit int) ([]store.CommitRecord, error)
}

// Arguments encapsulates IO writers injected from the host process.
type Arguments struct {
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Dependencies captures the collaborators for the CLI.
type Dependencies struct {
	Workflow Workflow
	Args     Arguments
	Version  string
}

// NewRootCommand constructs the root Cobra command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	versionString := deps.Version
	if versionString == "" {
		versionString = "v0.0.0"
	}

	root := &cobra.Command{
		Use:   "mc",
		Short: "Small, meaningful commits helper",
		Long:  "mc splits a dirty working tree into small, reviewable commits by parsing the unified diff, previewing hunks, and staging interactively per file.",
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	outWriter := deps.Args.OutWriter
	if outWriter == nil {
		outWriter = os.Stdout
	}
	errWriter := deps.Args.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	root.SetOut(outWriter)
	root.SetErr(errWriter)

	root.AddCommand(runCommand(deps.Workflow))
	root.AddCommand(statusCommand(deps.Workflow))
	root.AddCommand(historyCommand(deps.Workflow))

	var showVersion bool
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version and exit")
	versionHandler := func(cmd *cobra.Command, args []string) error {
		if showVersion {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString)
			return ErrVersionRequested
		}
		return nil
	}
	root.PersistentPreRunE = versionHandler
	root.PreRunE = versionHandler
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if err := versionHandler(cmd, args); err != nil {
			return err
		}
		return cmd.Help()
	}

	return root
}

func runCommand(workflow Workflow) *cobra.Command {
	var dryRun bool
	var noPush bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Stage, commit, and push one small commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Run(cmd.Context(), commit.RunRequest{
				DryRun: dryRun,
				NoPush: noPush,
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the summary and previews without staging anything")
	cmd.Flags().BoolVar(&noPush, "no-push", false, "Commit without pushing to the remote")

	return cmd
}

func statusCommand(workflow Workflow) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show per-file changed-line summaries and hunk previews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Status(cmd.Context())
		},
	}
}

func historyCommand(workflow Workflow) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent commits recorded in the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := workflow.History(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No commits recorded yet.")
				return nil
			}
			for _, r := range records {
				mark := "⚪"
				if r.WithinBand {
					mark = "✅"
				}
				fmt.Fprintf(out, "%s %s  %s  %s (files=%d, +%d -%d)\n",
					mark, r.Timestamp.Format("2006-01-02 15:04"), r.Branch, r.Message, r.Files, r.Added, r.Deleted)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of ledger entries to show")

	return cmd
}
