package diff

import (
	"fmt"
	"strings"
)

// Preview renders a human-readable block for a hunk: file path, the
// reconstructed hunk header, the changed-line counts, and up to maxLines
// body lines with a truncation marker when more remain.
func Preview(h Hunk, maxLines int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "file: %s\n", h.FilePath)
	fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
	fmt.Fprintf(&b, "changed: +%d / -%d / total=%d\n", h.Added(), h.Removed(), h.Changed())

	body := h.Body
	truncated := false
	if maxLines >= 0 && len(body) > maxLines {
		body = body[:maxLines]
		truncated = true
	}
	b.WriteString(strings.Join(body, "\n"))
	if truncated {
		b.WriteString("\n... (truncated) ...")
	}

	return b.String()
}
