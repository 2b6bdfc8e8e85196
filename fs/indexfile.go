package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docindex"
)

// Ensure IndexFile implements docindex.IndexStore at compile time.
var _ docindex.IndexStore = (*IndexFile)(nil)

// IndexFile stores the rendered index at a fixed path with atomic update
// semantics. Content is written to path.tmp and renamed into place.
type IndexFile struct {
	path string
}

// NewIndexFile creates a new IndexFile writing to path.
func NewIndexFile(path string) *IndexFile {
	return &IndexFile{path: path}
}

func (f *IndexFile) tempPath() string {
	return f.path + ".tmp"
}

// Save replaces the artifact with content. An artifact whose content is
// unchanged is left untouched.
func (f *IndexFile) Save(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if existing, err := os.ReadFile(f.path); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64String(content) {
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(f.tempPath(), []byte(content), 0644); err != nil {
		return err
	}
	if err := os.Rename(f.tempPath(), f.path); err != nil {
		_ = os.Remove(f.tempPath())
		return err
	}
	return nil
}
