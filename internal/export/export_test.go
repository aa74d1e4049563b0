package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConversations = []any{
	map[string]any{"user_id": "u1", "name": "привет <world> & more"},
	map[string]any{"user_id": "u1", "name": "second"},
}

func TestWriteWithHeader(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{
		UserID:        "u1",
		UserDisplay:   "Alice (alice@example.com)",
		IncludeHeader: true,
		Now:           time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, Write(&buf, testConversations, opts))

	var out Header
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "u1", out.UserID)
	assert.Equal(t, "Alice (alice@example.com)", out.UserDisplay)
	assert.Equal(t, "2026-08-26T12:00:00Z", out.ExportDate)
	assert.Equal(t, 2, out.ConversationCount)
	assert.Len(t, out.Conversations, out.ConversationCount)
}

func TestWriteWithoutHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testConversations, Options{UserID: "u1"}))

	var out []any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Len(t, out, 2)

	// bare list at the root, not a header object
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "["))
}

func TestWritePreservesTextAndIndents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testConversations, Options{UserID: "u1"}))

	raw := buf.String()
	assert.Contains(t, raw, "привет <world> & more")
	assert.NotContains(t, raw, `\u003c`)
	assert.Contains(t, raw, "\n  ")
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	opts := Options{UserID: "u1", UserDisplay: "u1", IncludeHeader: true}
	require.NoError(t, WriteFile(path, testConversations, opts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out Header
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "u1", out.UserID)
	assert.Equal(t, len(out.Conversations), out.ConversationCount)
}
