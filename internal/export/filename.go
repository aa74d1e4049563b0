package export

import (
	"strings"
	"time"
	"unicode"

	"github.com/mtrubnikov/claude-export-tool/internal/identity"
)

const filenamePrefix = "claude_conversations_"

// DefaultFilename builds claude_conversations_<name>_<timestamp>.json,
// preferring the identity name over the raw identifier when one is known.
func DefaultFilename(userID string, dir identity.Directory, now time.Time) string {
	base := userID
	if rec, ok := dir[userID]; ok && rec.Name != "" {
		base = strings.ReplaceAll(rec.Name, " ", "_")
	}
	safe := sanitize(base)
	if safe == "" {
		safe = sanitize(userID)
	}
	return filenamePrefix + safe + "_" + now.Format("20060102_150405") + ".json"
}

// EnsureJSONExt appends .json when path lacks the suffix.
func EnsureJSONExt(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return path
	}
	return path + ".json"
}

// sanitize keeps letters, digits, '-' and '_'.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
