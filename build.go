package docindex

import (
	"context"
	"time"
)

// Build records one regeneration pass over all modules.
type Build struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generatedAt"`
	Entries     int       `json:"entries"`
	Created     int       `json:"created"`
	IndexHash   string    `json:"indexHash"`

	// Not persisted.
	Problems []*Problem `json:"-"`
	Skipped  bool       `json:"-"`
}

// Problem is a per-file failure recorded during a build pass.
type Problem struct {
	Name string
	Path string
	Err  error
}

// Code returns the application error code of the problem.
func (p *Problem) Code() string {
	return ErrorCode(p.Err)
}

// Conflicts returns the problems that are name collisions.
func (b *Build) Conflicts() []*Problem {
	var a []*Problem
	for _, p := range b.Problems {
		if p.Code() == ECONFLICT {
			a = append(a, p)
		}
	}
	return a
}

// BuildService represents a service for recording build passes.
type BuildService interface {
	// CreateBuild records a finished build.
	CreateBuild(ctx context.Context, build *Build) error

	// FindLatestBuild returns the most recently generated build.
	// Returns ENOTFOUND if no build has been recorded.
	FindLatestBuild(ctx context.Context) (*Build, error)
}

// IndexService regenerates the documentation index.
type IndexService interface {
	// Rebuild rescans all modules when forced, when no entries exist, or
	// when the last build is older than the configured interval. A build
	// that was not needed is returned with Skipped set.
	Rebuild(ctx context.Context, force bool) (*Build, error)
}
