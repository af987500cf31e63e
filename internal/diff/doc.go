// Package diff parses unified diff output (as produced by `git diff
// --unified=3`) into hunks annotated with added/removed line counts.
//
// The counts drive the small-commit workflow: per-file and repository-wide
// changed-line totals are compared against the configured commit size band.
// They are advisory only; the authoritative numbers for what actually gets
// committed come from `git diff --cached --numstat` after staging.
package diff
