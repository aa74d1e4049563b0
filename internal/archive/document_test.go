package archive

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// docFromJSON decodes a JSON literal into a normalized Document.
func docFromJSON(t *testing.T, src string) *Document {
	t.Helper()
	var root any
	require.NoError(t, json.Unmarshal([]byte(src), &root))
	doc, err := New(root)
	require.NoError(t, err)
	return doc
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"user_id": }`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidJSON)
	assert.NotErrorIs(t, err, ErrFileNotFound)
}

func TestLoadListArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversations.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"user_id":"u1"}]`), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ShapeList, doc.Shape)
	assert.Len(t, doc.Conversations, 1)
}

func TestNewShapes(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		shape Shape
		convs int
	}{
		{
			name:  "root list",
			src:   `[{"user_id":"u1"},{"user_id":"u2"}]`,
			shape: ShapeList,
			convs: 2,
		},
		{
			name:  "conversations wrapper",
			src:   `{"conversations":[{"user_id":"u1"}]}`,
			shape: ShapeList,
			convs: 1,
		},
		{
			name:  "nested conversations wrappers",
			src:   `{"conversations":{"conversations":[{"user_id":"u1"}]}}`,
			shape: ShapeList,
			convs: 1,
		},
		{
			name:  "keyed by user",
			src:   `{"u6":[{"a":1},{"a":2}]}`,
			shape: ShapeKeyed,
		},
		{
			name:  "empty list",
			src:   `[]`,
			shape: ShapeList,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docFromJSON(t, tt.src)
			assert.Equal(t, tt.shape, doc.Shape)
			if tt.shape == ShapeList {
				assert.Len(t, doc.Conversations, tt.convs)
			}
		})
	}
}

func TestNewRejectsScalarRoot(t *testing.T) {
	_, err := New("just a string")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidJSON)

	// A conversations key wrapping a scalar is just as bad.
	_, err = New(map[string]any{"conversations": 42.0})
	assert.ErrorIs(t, err, ErrInvalidJSON)
}
