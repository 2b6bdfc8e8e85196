package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/docindex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docindex.BuildService = (*BuildService)(nil)

// BuildService implements docindex.BuildService using SQLite.
type BuildService struct {
	db *DB
}

// NewBuildService creates a new BuildService.
func NewBuildService(db *DB) *BuildService {
	return &BuildService{db: db}
}

// CreateBuild records a finished build. GeneratedAt defaults to now.
func (s *BuildService) CreateBuild(ctx context.Context, build *docindex.Build) error {
	build.ID = uuid.New().String()
	if build.GeneratedAt.IsZero() {
		build.GeneratedAt = time.Now()
	}
	build.GeneratedAt = build.GeneratedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO builds (id, generated_at, entries, created, index_hash)
		VALUES (?, ?, ?, ?, ?)
	`, build.ID, build.GeneratedAt.Format(time.RFC3339), build.Entries, build.Created, build.IndexHash)

	return err
}

// FindLatestBuild returns the most recently generated build.
func (s *BuildService) FindLatestBuild(ctx context.Context) (*docindex.Build, error) {
	var build docindex.Build
	var generatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, generated_at, entries, created, index_hash
		FROM builds
		ORDER BY generated_at DESC, rowid DESC
		LIMIT 1
	`).Scan(&build.ID, &generatedAt, &build.Entries, &build.Created, &build.IndexHash)

	if err == sql.ErrNoRows {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "no build recorded")
	}
	if err != nil {
		return nil, err
	}

	build.GeneratedAt, err = parseRFC3339(generatedAt, "generated_at")
	if err != nil {
		return nil, err
	}

	return &build, nil
}
