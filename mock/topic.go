package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.TopicService = (*TopicService)(nil)

// TopicService is a mock implementation of docindex.TopicService.
type TopicService struct {
	ExpandTopicFn func(ctx context.Context, name string, format docindex.Format) (string, error)
}

func (s *TopicService) ExpandTopic(ctx context.Context, name string, format docindex.Format) (string, error) {
	return s.ExpandTopicFn(ctx, name, format)
}
