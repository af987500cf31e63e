package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bkyoung/micro-commit/internal/diff"
)

const twoFileDiff = `diff --git a/first.go b/first.go
--- a/first.go
+++ b/first.go
@@ -1,2 +1,3 @@
 context
-old
+new
+added
diff --git a/second.go b/second.go
--- a/second.go
+++ b/second.go
@@ -10,1 +10,2 @@
 context
+added
`

func TestChangedLinesForFile(t *testing.T) {
	hunks := diff.Parse(twoFileDiff)

	assert.Equal(t, 3, diff.ChangedLinesForFile(hunks, "first.go"))
	assert.Equal(t, 1, diff.ChangedLinesForFile(hunks, "second.go"))
	assert.Equal(t, 0, diff.ChangedLinesForFile(hunks, "missing.go"))
}

func TestChangedLinesTotal(t *testing.T) {
	hunks := diff.Parse(twoFileDiff)

	assert.Equal(t, 4, diff.ChangedLinesTotal(hunks))
	assert.Equal(t, 0, diff.ChangedLinesTotal(nil))
}

func TestFilePaths(t *testing.T) {
	hunks := diff.Parse(twoFileDiff)
	assert.Equal(t, []string{"first.go", "second.go"}, diff.FilePaths(hunks))
}

func TestFilePaths_DropsEmptyAndDeduplicates(t *testing.T) {
	hunks := []diff.Hunk{
		{FilePath: "b.go"},
		{FilePath: ""},
		{FilePath: "a.go"},
		{FilePath: "b.go"},
	}

	assert.Equal(t, []string{"a.go", "b.go"}, diff.FilePaths(hunks))
}
