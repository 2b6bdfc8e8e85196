package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of docindex.Scanner.
type Scanner struct {
	ScanFn func(ctx context.Context, module *docindex.Module) ([]string, error)
}

func (s *Scanner) Scan(ctx context.Context, module *docindex.Module) ([]string, error) {
	return s.ScanFn(ctx, module)
}

var _ docindex.Source = (*Source)(nil)

// Source is a mock implementation of docindex.Source.
type Source struct {
	ExistsFn    func(path string) bool
	FirstLineFn func(path string) (string, error)
	ReadFileFn  func(path string) ([]byte, error)
}

func (s *Source) Exists(path string) bool {
	return s.ExistsFn(path)
}

func (s *Source) FirstLine(path string) (string, error) {
	return s.FirstLineFn(path)
}

func (s *Source) ReadFile(path string) ([]byte, error) {
	return s.ReadFileFn(path)
}

var _ docindex.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of docindex.IndexStore.
type IndexStore struct {
	SaveFn func(ctx context.Context, content string) error
}

func (s *IndexStore) Save(ctx context.Context, content string) error {
	return s.SaveFn(ctx, content)
}
