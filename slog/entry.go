// Package slog provides logging decorators for docindex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingEntryService implements docindex.EntryService.
var _ docindex.EntryService = (*LoggingEntryService)(nil)

// LoggingEntryService wraps an EntryService with debug logging.
type LoggingEntryService struct {
	next   docindex.EntryService
	logger *slog.Logger
}

// NewLoggingEntryService creates a new LoggingEntryService.
func NewLoggingEntryService(next docindex.EntryService, logger *slog.Logger) *LoggingEntryService {
	return &LoggingEntryService{next: next, logger: logger}
}

// CreateEntry delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) CreateEntry(ctx context.Context, entry *docindex.Entry) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create entry",
			"name", entry.Name,
			"parent", entry.Parent,
			"order", entry.Order,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateEntry(ctx, entry)
}

// FindEntryByName delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) FindEntryByName(ctx context.Context, name string) (entry *docindex.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find entry",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntryByName(ctx, name)
}

// FindEntries delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) FindEntries(ctx context.Context, filter docindex.EntryFilter) (entries []*docindex.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find entries",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntries(ctx, filter)
}

// CountEntries delegates to the wrapped service.
func (s *LoggingEntryService) CountEntries(ctx context.Context) (int, error) {
	return s.next.CountEntries(ctx)
}
