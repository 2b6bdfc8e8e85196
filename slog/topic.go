package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingTopicService implements docindex.TopicService.
var _ docindex.TopicService = (*LoggingTopicService)(nil)

// LoggingTopicService wraps a TopicService with debug logging.
type LoggingTopicService struct {
	next   docindex.TopicService
	logger *slog.Logger
}

// NewLoggingTopicService creates a new LoggingTopicService.
func NewLoggingTopicService(next docindex.TopicService, logger *slog.Logger) *LoggingTopicService {
	return &LoggingTopicService{next: next, logger: logger}
}

// ExpandTopic delegates to the wrapped service and logs the operation.
func (s *LoggingTopicService) ExpandTopic(ctx context.Context, name string, format docindex.Format) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("expand topic",
			"name", name,
			"format", string(format),
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExpandTopic(ctx, name, format)
}
