package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bkyoung/micro-commit/internal/adapter/cli"
	"github.com/bkyoung/micro-commit/internal/adapter/git"
	"github.com/bkyoung/micro-commit/internal/adapter/observability"
	"github.com/bkyoung/micro-commit/internal/adapter/output/markdown"
	"github.com/bkyoung/micro-commit/internal/adapter/runner"
	"github.com/bkyoung/micro-commit/internal/adapter/store/sqlite"
	"github.com/bkyoung/micro-commit/internal/config"
	"github.com/bkyoung/micro-commit/internal/domain"
	"github.com/bkyoung/micro-commit/internal/usecase/commit"
	"github.com/bkyoung/micro-commit/internal/version"
)

func main() {
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	// Cancellable context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(config.LoaderOptions{
		ConfigPaths: defaultConfigPaths(),
		FileName:    "mc",
		EnvPrefix:   "MC",
	})
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	repoDir := cfg.Git.RepositoryDir
	if repoDir == "" {
		repoDir = "."
	}

	execRunner := runner.NewExecRunner(repoDir)
	gitEngine := git.NewEngine(repoDir, execRunner)
	if !gitEngine.IsRepository() {
		return fmt.Errorf("%s is not inside a git repository", repoDir)
	}

	var logger observability.Logger
	if cfg.Observability.Logging.Enabled {
		logger = observability.NewDefaultLogger(
			observability.ParseLevel(cfg.Observability.Logging.Level),
			observability.ParseFormat(cfg.Observability.Logging.Format),
			os.Stderr,
		)
	}

	// Initialize the commit ledger if enabled
	var ledger *sqlite.Store
	if cfg.Store.Enabled {
		storeDir := filepath.Dir(cfg.Store.Path)
		if err := os.MkdirAll(storeDir, 0o755); err != nil {
			log.Printf("warning: failed to create ledger directory: %v", err)
		} else {
			ledger, err = sqlite.NewStore(cfg.Store.Path)
			if err != nil {
				log.Printf("warning: failed to initialize ledger: %v", err)
				ledger = nil
			} else {
				defer ledger.Close()
			}
		}
	}

	// Timestamp function for deterministic report file naming
	nowFunc := func() string {
		return time.Now().UTC().Format("20060102T150405Z")
	}

	var reportWriter commit.ReportWriter
	if cfg.Output.Directory != "" {
		reportWriter = markdown.NewWriter(nowFunc)
	}

	deps := commit.OrchestratorDeps{
		Git:      gitEngine,
		Prompter: commit.NewIOPrompter(os.Stdin, os.Stdout),
		Report:   reportWriter,
		Out:      os.Stdout,
		Band: domain.SizeBand{
			MinLines: cfg.Commit.MinLines,
			MaxLines: cfg.Commit.MaxLines,
		},
		Preview: commit.PreviewOptions{
			MaxHunks: cfg.Preview.MaxHunks,
			MaxLines: cfg.Preview.MaxLines,
		},
		Remote:     cfg.Git.Remote,
		Repository: repositoryName(repoDir),
		ReportDir:  cfg.Output.Directory,
	}
	if logger != nil {
		deps.Logger = logger
	}
	if ledger != nil {
		deps.Ledger = ledger
	}

	orchestrator := commit.NewOrchestrator(deps)

	root := cli.NewRootCommand(cli.Dependencies{
		Workflow: orchestrator,
		Version:  version.Value(),
	})

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, cli.ErrVersionRequested) {
			return nil
		}
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

func repositoryName(repoDir string) string {
	abs, err := filepath.Abs(repoDir)
	if err != nil {
		return "unknown"
	}
	return filepath.Base(abs)
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mc"))
	}
	return paths
}
