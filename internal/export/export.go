package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Header wraps a filtered conversation list with export metadata.
type Header struct {
	UserID            string `json:"user_id"`
	UserDisplay       string `json:"user_display"`
	ExportDate        string `json:"export_date"`
	ConversationCount int    `json:"conversation_count"`
	Conversations     []any  `json:"conversations"`
}

// Options controls how a filtered export is written.
type Options struct {
	UserID        string
	UserDisplay   string
	IncludeHeader bool
	Now           time.Time // zero means time.Now
}

// Write emits the filtered conversations as pretty-printed JSON, two
// space indent, with HTML escaping off so non-ASCII text and angle
// brackets pass through as-is.
func Write(w io.Writer, conversations []any, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if !opts.IncludeHeader {
		return enc.Encode(conversations)
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return enc.Encode(Header{
		UserID:            opts.UserID,
		UserDisplay:       opts.UserDisplay,
		ExportDate:        now.Format(time.RFC3339),
		ConversationCount: len(conversations),
		Conversations:     conversations,
	})
}

// WriteFile writes the export to path, creating or truncating it.
func WriteFile(path string, conversations []any, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, conversations, opts); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
