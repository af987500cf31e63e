package domain

// DefaultMinLines and DefaultMaxLines bound the recommended changed-line
// count for a single commit.
const (
	DefaultMinLines = 3
	DefaultMaxLines = 10
)

// SizeBand is the recommended changed-line range for one commit.
type SizeBand struct {
	MinLines int
	MaxLines int
}

// DefaultSizeBand returns the stock 3-10 line recommendation.
func DefaultSizeBand() SizeBand {
	return SizeBand{MinLines: DefaultMinLines, MaxLines: DefaultMaxLines}
}

// Contains reports whether a changed-line total falls inside the band.
func (b SizeBand) Contains(n int) bool {
	return n >= b.MinLines && n <= b.MaxLines
}

// NumstatRow is one row of `git diff --cached --numstat` output: the
// authoritative staged added/deleted counts for a single file.
type NumstatRow struct {
	Added   int
	Deleted int
	Path    string
}

// TotalChanged sums added and deleted lines across numstat rows.
func TotalChanged(rows []NumstatRow) int {
	total := 0
	for _, r := range rows {
		total += r.Added + r.Deleted
	}
	return total
}
