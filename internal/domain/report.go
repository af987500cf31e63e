package domain

// SessionReport captures everything worth keeping from one run of the
// commit workflow, for rendering into an output artifact.
type SessionReport struct {
	OutputDir  string
	Repository string
	Branch     string
	Band       SizeBand
	Summaries  []FileSummary
	Staged     []NumstatRow
	Message    string
}
