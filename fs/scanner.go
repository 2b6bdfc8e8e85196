// Package fs provides filesystem access to module documentation trees.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/docindex"
)

// Ensure Scanner implements docindex.Scanner at compile time.
var _ docindex.Scanner = (*Scanner)(nil)

// Scanner discovers markdown files under a module's doc directory.
// Symlinked directories are not followed.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns the doc-root relative paths of all index documents, then of
// all markdown files, each group sorted ascending.
func (s *Scanner) Scan(ctx context.Context, module *docindex.Module) ([]string, error) {
	root := module.DocPath()

	info, err := os.Stat(root)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var indexes, docs []string
	err = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Unreadable subtree.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = "/" + filepath.ToSlash(rel)

		if d.Name() == docindex.IndexFile {
			indexes = append(indexes, rel)
		}
		docs = append(docs, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(indexes)
	sort.Strings(docs)
	return append(indexes, docs...), nil
}
