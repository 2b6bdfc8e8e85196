package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of docindex.EntryService.
type EntryService struct {
	CreateEntryFn     func(ctx context.Context, entry *docindex.Entry) error
	FindEntryByNameFn func(ctx context.Context, name string) (*docindex.Entry, error)
	FindEntriesFn     func(ctx context.Context, filter docindex.EntryFilter) ([]*docindex.Entry, error)
	CountEntriesFn    func(ctx context.Context) (int, error)
}

func (s *EntryService) CreateEntry(ctx context.Context, entry *docindex.Entry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *EntryService) FindEntryByName(ctx context.Context, name string) (*docindex.Entry, error) {
	return s.FindEntryByNameFn(ctx, name)
}

func (s *EntryService) FindEntries(ctx context.Context, filter docindex.EntryFilter) ([]*docindex.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryService) CountEntries(ctx context.Context) (int, error) {
	return s.CountEntriesFn(ctx)
}
