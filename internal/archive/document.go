package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load error sentinels. The CLI layer distinguishes them with errors.Is
// to decide what to tell the operator.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidJSON  = errors.New("invalid JSON")
)

// Result sentinels for empty outcomes.
var (
	ErrNoUsers   = errors.New("no users found in the conversation data")
	ErrNoMatches = errors.New("no conversations found for user")
)

// Shape tags the two accepted document layouts.
type Shape int

const (
	// ShapeList is an ordered list of conversation records.
	ShapeList Shape = iota
	// ShapeKeyed is a mapping from user identifier to that user's data.
	ShapeKeyed
)

func (s Shape) String() string {
	if s == ShapeKeyed {
		return "keyed-by-user"
	}
	return "list"
}

// Document is an export archive normalized once at load time. A root
// list becomes ShapeList, as does any mapping wrapping one under a
// "conversations" key (unwrapped recursively). Any other mapping is
// treated as keyed by user identifier. The document is read-only after
// load; extraction and counting never mutate it.
type Document struct {
	Shape         Shape
	Conversations []any          // set for ShapeList
	ByUser        map[string]any // set for ShapeKeyed
}

// Load reads and parses an archive file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
	}

	doc, err := New(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// New resolves a decoded JSON root into its canonical document shape.
func New(root any) (*Document, error) {
	for {
		switch v := root.(type) {
		case []any:
			return &Document{Shape: ShapeList, Conversations: v}, nil
		case map[string]any:
			inner, ok := v["conversations"]
			if !ok {
				return &Document{Shape: ShapeKeyed, ByUser: v}, nil
			}
			root = inner
		default:
			return nil, fmt.Errorf("%w: document root must be a list or mapping", ErrInvalidJSON)
		}
	}
}
