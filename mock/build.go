package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.BuildService = (*BuildService)(nil)

// BuildService is a mock implementation of docindex.BuildService.
type BuildService struct {
	CreateBuildFn     func(ctx context.Context, build *docindex.Build) error
	FindLatestBuildFn func(ctx context.Context) (*docindex.Build, error)
}

func (s *BuildService) CreateBuild(ctx context.Context, build *docindex.Build) error {
	return s.CreateBuildFn(ctx, build)
}

func (s *BuildService) FindLatestBuild(ctx context.Context) (*docindex.Build, error) {
	return s.FindLatestBuildFn(ctx)
}

var _ docindex.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of docindex.IndexService.
type IndexService struct {
	RebuildFn func(ctx context.Context, force bool) (*docindex.Build, error)
}

func (s *IndexService) Rebuild(ctx context.Context, force bool) (*docindex.Build, error) {
	return s.RebuildFn(ctx, force)
}
