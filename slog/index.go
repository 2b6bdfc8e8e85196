package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingIndexService implements docindex.IndexService.
var _ docindex.IndexService = (*LoggingIndexService)(nil)

// LoggingIndexService wraps an IndexService with logging. Every problem of
// a pass is reported as a warning.
type LoggingIndexService struct {
	next   docindex.IndexService
	logger *slog.Logger
}

// NewLoggingIndexService creates a new LoggingIndexService.
func NewLoggingIndexService(next docindex.IndexService, logger *slog.Logger) *LoggingIndexService {
	return &LoggingIndexService{next: next, logger: logger}
}

// Rebuild delegates to the wrapped service and logs the pass.
func (s *LoggingIndexService) Rebuild(ctx context.Context, force bool) (build *docindex.Build, err error) {
	defer func(begin time.Time) {
		var entries, created, problems int
		var skipped bool
		if build != nil {
			entries, created, problems, skipped = build.Entries, build.Created, len(build.Problems), build.Skipped
			for _, p := range build.Problems {
				s.logger.Warn("build problem",
					"name", p.Name,
					"path", p.Path,
					"code", p.Code(),
					"err", p.Err,
				)
			}
		}
		s.logger.Info("rebuild",
			"force", force,
			"skipped", skipped,
			"entries", entries,
			"created", created,
			"problems", problems,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rebuild(ctx, force)
}
