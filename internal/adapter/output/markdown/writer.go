package markdown

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bkyoung/micro-commit/internal/domain"
)

type clock func() string

// Writer renders a commit session into a Markdown report file.
type Writer struct {
	now clock
}

// NewWriter constructs a Markdown writer with a timestamp supplier.
func NewWriter(now clock) *Writer {
	return &Writer{now: now}
}

// Write persists a Markdown report to disk and returns its path.
func (w *Writer) Write(ctx context.Context, report domain.SessionReport) (string, error) {
	if err := os.MkdirAll(report.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s_%s.md",
		sanitise(report.Repository),
		sanitise(report.Branch),
		w.now(),
	)
	path := filepath.Join(report.OutputDir, filename)

	if err := os.WriteFile(path, []byte(buildContent(report)), 0o644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}

	return path, nil
}

func buildContent(report domain.SessionReport) string {
	var builder strings.Builder
	caser := cases.Title(language.English)

	builder.WriteString("# Commit Session Report\n\n")
	builder.WriteString(fmt.Sprintf("- Repository: %s\n", report.Repository))
	builder.WriteString(fmt.Sprintf("- Branch: %s\n", report.Branch))
	builder.WriteString(fmt.Sprintf("- Recommended band: %d-%d changed lines\n\n", report.Band.MinLines, report.Band.MaxLines))

	if report.Message != "" {
		builder.WriteString("## Commit\n\n")
		builder.WriteString(fmt.Sprintf("> %s\n\n", report.Message))
	}

	builder.WriteString("## Working Tree Summary\n\n")
	if len(report.Summaries) == 0 {
		builder.WriteString("No hunks found.\n")
	} else {
		builder.WriteString("| File | Hunks | Changed | Verdict |\n")
		builder.WriteString("| --- | ---: | ---: | --- |\n")
		for _, s := range report.Summaries {
			verdict := "outside band"
			if s.WithinBand {
				verdict = "within band"
			}
			builder.WriteString(fmt.Sprintf("| %s | %d | %d | %s |\n",
				s.Path, s.HunkCount, s.ChangedLines, caser.String(verdict)))
		}
	}

	if len(report.Staged) > 0 {
		total := domain.TotalChanged(report.Staged)
		builder.WriteString("\n## Staged Changes\n\n")
		for _, row := range report.Staged {
			builder.WriteString(fmt.Sprintf("- %s: +%d -%d\n", row.Path, row.Added, row.Deleted))
		}
		builder.WriteString(fmt.Sprintf("\nTotal staged changed lines: %d\n", total))
	}

	return builder.String()
}

func sanitise(value string) string {
	if value == "" {
		return "unknown"
	}
	value = strings.ToLower(value)
	value = strings.ReplaceAll(value, string(filepath.Separator), "-")
	value = strings.ReplaceAll(value, " ", "-")
	return value
}
