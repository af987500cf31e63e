package diff

import "sort"

// ChangedLinesForFile sums Changed() over all hunks belonging to path.
func ChangedLinesForFile(hunks []Hunk, path string) int {
	total := 0
	for _, h := range hunks {
		if h.FilePath == path {
			total += h.Changed()
		}
	}
	return total
}

// ChangedLinesTotal sums Changed() over all hunks.
func ChangedLinesTotal(hunks []Hunk) int {
	total := 0
	for _, h := range hunks {
		total += h.Changed()
	}
	return total
}

// FilePaths returns the sorted, deduplicated file paths covered by the
// hunks. Hunks that appeared before any file marker carry an empty path
// and are skipped.
func FilePaths(hunks []Hunk) []string {
	seen := make(map[string]bool, len(hunks))
	for _, h := range hunks {
		if h.FilePath != "" {
			seen[h.FilePath] = true
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
