package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateCommitID creates a unique, time-ordered ledger ID.
// Format: commit-<timestamp>-<hash>
func GenerateCommitID(timestamp time.Time, branch, message string) string {
	ts := timestamp.UTC().Format("20060102T150405Z")

	input := fmt.Sprintf("%s|%s|%d", branch, message, timestamp.UnixNano())
	hash := sha256.Sum256([]byte(input))
	shortHash := hex.EncodeToString(hash[:3])

	return fmt.Sprintf("commit-%s-%s", ts, shortHash)
}
