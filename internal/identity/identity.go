package identity

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mtrubnikov/claude-export-tool/internal/archive"
)

var (
	idFields    = []string{"id", "uuid", "user_id"}
	nameFields  = []string{"name", "display_name", "full_name"}
	emailFields = []string{"email", "email_address"}
)

// Record is one entry from a users.json identity file.
type Record struct {
	ID    string
	Name  string
	Email string
}

// Directory maps user identifiers to identity records. The zero value
// is usable and resolves every identifier to itself.
type Directory map[string]Record

// Load reads an identity file. Two layouts are accepted: an array of
// records carrying their own id, or a mapping keyed by identifier.
// Errors are meant to be reported as warnings; the returned Directory
// is always usable.
func Load(path string) (Directory, error) {
	dir := Directory{}

	data, err := os.ReadFile(path)
	if err != nil {
		return dir, err
	}

	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return dir, fmt.Errorf("parse %s: %w", path, err)
	}

	switch v := root.(type) {
	case []any:
		for _, e := range v {
			rec, ok := e.(map[string]any)
			if !ok {
				continue
			}
			id, ok := archive.FirstField(rec, idFields)
			if !ok {
				continue
			}
			dir[id] = newRecord(id, rec)
		}
	case map[string]any:
		for id, e := range v {
			rec, ok := e.(map[string]any)
			if !ok {
				continue
			}
			dir[id] = newRecord(id, rec)
		}
	}
	return dir, nil
}

func newRecord(id string, rec map[string]any) Record {
	name, _ := archive.FirstField(rec, nameFields)
	email, _ := archive.FirstField(rec, emailFields)
	return Record{ID: id, Name: name, Email: email}
}

// Discover returns the path of a users.json sitting next to the archive,
// or "" when there is none.
func Discover(archivePath string) string {
	base := filepath.Dir(archivePath)
	path := filepath.Join(base, "users.json")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// DisplayName formats a human-readable label for a user identifier:
// "name (email)" when both are known, otherwise the known half plus a
// shortened identifier, otherwise the identifier itself.
func (d Directory) DisplayName(id string) string {
	rec, ok := d[id]
	if !ok {
		return id
	}
	switch {
	case rec.Name != "" && rec.Email != "":
		return fmt.Sprintf("%s (%s)", rec.Name, rec.Email)
	case rec.Name != "":
		return fmt.Sprintf("%s [%s...]", rec.Name, shortID(id))
	case rec.Email != "":
		return fmt.Sprintf("%s [%s...]", rec.Email, shortID(id))
	default:
		return id
	}
}

// shortID returns the first 8 characters of id, or all of it when shorter.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
