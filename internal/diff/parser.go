package diff

import (
	"regexp"
	"strconv"
	"strings"
)

// Hunk represents one contiguous changed region within a single file,
// bounded by an `@@ ... @@` header in the unified diff.
type Hunk struct {
	FilePath string   // Path from the most recent `diff --git` line ("" if none seen)
	OldStart int      // Starting line on the old side
	OldCount int      // Line count on the old side (1 when omitted in the header)
	NewStart int      // Starting line on the new side
	NewCount int      // Line count on the new side (1 when omitted in the header)
	Body     []string // Raw diff lines between this header and the next boundary
}

// Added returns the number of added lines in the hunk body. The `+++`
// file-summary line is not an addition even though it starts with '+'.
func (h Hunk) Added() int {
	n := 0
	for _, line := range h.Body {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			n++
		}
	}
	return n
}

// Removed returns the number of removed lines in the hunk body, excluding
// the `---` file-summary line.
func (h Hunk) Removed() int {
	n := 0
	for _, line := range h.Body {
		if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			n++
		}
	}
	return n
}

// Changed returns the total changed-line count (added + removed).
func (h Hunk) Changed() int {
	return h.Added() + h.Removed()
}

// hunkHeaderRe matches `@@ -oldStart[,oldCount] +newStart[,newCount] @@`;
// trailing section context after the closing @@ is ignored.
var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

const fileMarkerPrefix = "diff --git "

// Parse converts unified diff text into hunks, in the order their headers
// appear in the input. It is a pure function: empty input yields no hunks,
// lines before the first recognized marker are ignored, and a hunk header
// whose numeric fields fail integer conversion is treated as an ordinary
// ignored line rather than failing the parse.
func Parse(diffText string) []Hunk {
	if diffText == "" {
		return nil
	}

	// git terminates its output with a newline; splitting without trimming
	// it would hand the last hunk a phantom empty body line.
	lines := strings.Split(strings.TrimSuffix(diffText, "\n"), "\n")

	var hunks []Hunk
	currentFile := ""

	i := 0
	for i < len(lines) {
		line := lines[i]

		if strings.HasPrefix(line, fileMarkerPrefix) {
			currentFile = filePathFromMarker(line)
			i++
			continue
		}

		if h, ok := parseHunkHeader(line); ok {
			h.FilePath = currentFile

			// Collect the body up to the next hunk header or file
			// marker (exclusive) or end of input.
			i++
			for i < len(lines) {
				next := lines[i]
				if strings.HasPrefix(next, fileMarkerPrefix) || hunkHeaderRe.MatchString(next) {
					break
				}
				h.Body = append(h.Body, next)
				i++
			}

			hunks = append(hunks, h)
			continue
		}

		i++
	}

	return hunks
}

// filePathFromMarker extracts the b-side path from a `diff --git a/x b/x`
// line, stripping the `b/` prefix when present. A marker without enough
// tokens leaves the current file context unchanged only in spirit; here it
// resets to empty so a following hunk is not attributed to the wrong file.
func filePathFromMarker(line string) string {
	parts := strings.Fields(line)
	if len(parts) < 4 {
		return ""
	}
	bPath := parts[3]
	if strings.HasPrefix(bPath, "b/") {
		return bPath[2:]
	}
	return bPath
}

// parseHunkHeader parses a `@@ -a,b +c,d @@` line. Omitted counts default
// to 1 per unified-diff convention. Returns ok=false for non-header lines
// and for headers whose numeric fields do not convert, so the caller falls
// through to ignored-line handling.
func parseHunkHeader(line string) (Hunk, bool) {
	m := hunkHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return Hunk{}, false
	}

	oldStart, err := strconv.Atoi(m[1])
	if err != nil {
		return Hunk{}, false
	}
	oldCount, err := atoiDefault(m[2], 1)
	if err != nil {
		return Hunk{}, false
	}
	newStart, err := strconv.Atoi(m[3])
	if err != nil {
		return Hunk{}, false
	}
	newCount, err := atoiDefault(m[4], 1)
	if err != nil {
		return Hunk{}, false
	}

	return Hunk{
		OldStart: oldStart,
		OldCount: oldCount,
		NewStart: newStart,
		NewCount: newCount,
	}, true
}

func atoiDefault(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
