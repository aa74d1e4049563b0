package export

import (
	"testing"
	"time"

	"github.com/mtrubnikov/claude-export-tool/internal/identity"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 8, 26, 15, 4, 5, 0, time.UTC)

func TestDefaultFilename(t *testing.T) {
	dir := identity.Directory{
		"u1": {ID: "u1", Name: "Alice Smith"},
		"u2": {ID: "u2", Email: "bob@example.com"},
	}

	tests := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "identity name preferred, spaces replaced",
			id:   "u1",
			want: "claude_conversations_Alice_Smith_20260826_150405.json",
		},
		{
			name: "falls back to id without a name",
			id:   "u2",
			want: "claude_conversations_u2_20260826_150405.json",
		},
		{
			name: "unknown id used directly",
			id:   "abc-123",
			want: "claude_conversations_abc-123_20260826_150405.json",
		},
		{
			name: "unsafe characters stripped",
			id:   "we!rd/id",
			want: "claude_conversations_werdid_20260826_150405.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultFilename(tt.id, dir, testNow))
		})
	}
}

func TestEnsureJSONExt(t *testing.T) {
	assert.Equal(t, "out.json", EnsureJSONExt("out"))
	assert.Equal(t, "out.json", EnsureJSONExt("out.json"))
	assert.Equal(t, "OUT.JSON", EnsureJSONExt("OUT.JSON"))
	assert.Equal(t, "out.txt.json", EnsureJSONExt("out.txt"))
}
