package docindex

import (
	"context"
	"path"
	"strings"
	"time"
)

// IndexFile is the file name of a directory-level index document.
const IndexFile = "README.md"

// Entry represents one indexed documentation page.
type Entry struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Order       string    `json:"order"`
	Parent      string    `json:"parent,omitempty"`
	Module      string    `json:"module"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	if e.Module == "" {
		return Errorf(EINVALID, "entry module required")
	}
	if e.Description == "" {
		return Errorf(EINVALID, "entry description required")
	}
	if !ValidOrder(e.Order) {
		return Errorf(EINVALID, "entry order %q is not a 6-character key", e.Order)
	}
	return nil
}

// IsRoot reports whether the entry has no parent.
func (e *Entry) IsRoot() bool {
	return e.Parent == ""
}

// IsIndex reports whether the entry is a directory-level index document.
func (e *Entry) IsIndex() bool {
	return IsIndexName(e.Name)
}

// Level returns the nesting depth derived from the name. A module's top
// README.md is level 0.
func (e *Entry) Level() int {
	return Level(e.Name)
}

// GitURL returns the browse URL of the entry's source file, or an empty
// string when the module has no source URL.
func (e *Entry) GitURL(m *Module) string {
	if m == nil || m.SourceURL == "" {
		return ""
	}
	_, rel := SplitName(e.Name)
	return strings.TrimSuffix(m.SourceURL, "/") + "/tree/master/doc" + rel
}

// IsIndexName reports whether name refers to an index document.
func IsIndexName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), "readme.md")
}

// Level returns the nesting depth of a canonical name.
func Level(name string) int {
	return strings.Count(name, "/") - 1
}

// CanonicalName joins a module name and a doc-root relative path.
func CanonicalName(module, rel string) string {
	return module + path.Clean("/"+rel)
}

// SplitName splits a canonical name into its module and the doc-root
// relative path, which always starts with "/".
func SplitName(name string) (module, rel string) {
	i := strings.Index(name, "/")
	if i < 0 {
		return name, "/"
	}
	return name[:i], name[i:]
}

// EntryService represents a service for managing entries.
// Entries are immutable once created.
type EntryService interface {
	// CreateEntry creates a new entry.
	// Returns ECONFLICT if an entry with the same name exists.
	CreateEntry(ctx context.Context, entry *Entry) error

	// FindEntryByName retrieves an entry by name. Lookups ignore case.
	// Returns ENOTFOUND if entry does not exist.
	FindEntryByName(ctx context.Context, name string) (*Entry, error)

	// FindEntries retrieves entries matching the filter.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	// CountEntries returns the total number of entries.
	CountEntries(ctx context.Context) (int, error)
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	Parent *string `json:"parent"`
	Module *string `json:"module"`
	Roots  bool    `json:"roots"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
