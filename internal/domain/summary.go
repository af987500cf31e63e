package domain

import "github.com/bkyoung/micro-commit/internal/diff"

// FileSummary aggregates all hunks of one file into a changed-line total
// and a verdict against the commit size band.
type FileSummary struct {
	Path         string
	HunkCount    int
	ChangedLines int
	WithinBand   bool
}

// SummarizeFiles groups hunks by file path and classifies each file's
// changed-line total against the band. Summaries come back sorted by path;
// hunks without a file path are excluded (they have no file to stage).
func SummarizeFiles(hunks []diff.Hunk, band SizeBand) []FileSummary {
	paths := diff.FilePaths(hunks)

	summaries := make([]FileSummary, 0, len(paths))
	for _, path := range paths {
		count := 0
		for _, h := range hunks {
			if h.FilePath == path {
				count++
			}
		}
		changed := diff.ChangedLinesForFile(hunks, path)
		summaries = append(summaries, FileSummary{
			Path:         path,
			HunkCount:    count,
			ChangedLines: changed,
			WithinBand:   band.Contains(changed),
		})
	}
	return summaries
}
