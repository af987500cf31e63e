package diff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bkyoung/micro-commit/internal/diff"
)

func TestPreview(t *testing.T) {
	h := diff.Hunk{
		FilePath: "x.py",
		OldStart: 1,
		OldCount: 2,
		NewStart: 1,
		NewCount: 3,
		Body:     []string{" line1", "-old", "+new", "+added"},
	}

	out := diff.Preview(h, 24)

	assert.Contains(t, out, "file: x.py")
	assert.Contains(t, out, "@@ -1,2 +1,3 @@")
	assert.Contains(t, out, "changed: +2 / -1 / total=3")
	assert.Contains(t, out, "-old")
	assert.NotContains(t, out, "truncated")
}

func TestPreview_Truncation(t *testing.T) {
	h := diff.Hunk{FilePath: "big.go"}
	for i := 0; i < 30; i++ {
		h.Body = append(h.Body, "+line")
	}

	out := diff.Preview(h, 5)

	assert.True(t, strings.HasSuffix(out, "... (truncated) ..."))
	assert.Equal(t, 5, strings.Count(out, "+line"))
}
