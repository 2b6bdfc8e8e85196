package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/docindex"
	main "github.com/fwojciec/docindex/cmd/docindex"
	"github.com/fwojciec/docindex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports entries and problems", func(t *testing.T) {
		t.Parallel()

		var forced bool
		index := &mock.IndexService{
			RebuildFn: func(_ context.Context, force bool) (*docindex.Build, error) {
				forced = force
				return &docindex.Build{
					Entries: 7,
					Created: 2,
					Problems: []*docindex.Problem{{
						Name: "core/notes.md",
						Err:  docindex.Errorf(docindex.EUNTITLED, "notes.md does not start with a heading"),
					}},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Index: index}

		err := (&main.BuildCmd{Force: true}).Run(deps)

		require.NoError(t, err)
		assert.True(t, forced)
		assert.Contains(t, stdout.String(), "Indexed 7 entries (2 new)")
		assert.Contains(t, stderr.String(), "skip core/notes.md: notes.md does not start with a heading")
	})

	t.Run("reports fresh index", func(t *testing.T) {
		t.Parallel()

		index := &mock.IndexService{
			RebuildFn: func(context.Context, bool) (*docindex.Build, error) {
				return &docindex.Build{Entries: 7, Skipped: true, GeneratedAt: time.Now()}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Index: index}

		err := (&main.BuildCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Index is up to date (7 entries")
	})

	t.Run("returns conflict after reporting the pass", func(t *testing.T) {
		t.Parallel()

		index := &mock.IndexService{
			RebuildFn: func(context.Context, bool) (*docindex.Build, error) {
				return &docindex.Build{
						Entries: 3,
						Problems: []*docindex.Problem{{
							Name: "core/intro.md",
							Err:  docindex.Errorf(docindex.ECONFLICT, "collision"),
						}},
					},
					docindex.Errorf(docindex.ECONFLICT, "ambiguous documentation names: core/intro.md")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Index: index}

		err := (&main.BuildCmd{}).Run(deps)

		assert.Equal(t, docindex.ECONFLICT, docindex.ErrorCode(err))
		assert.Contains(t, stdout.String(), "Indexed 3 entries")
		assert.Contains(t, stderr.String(), "skip core/intro.md: collision")
		assert.Contains(t, stderr.String(), "error: ambiguous documentation names")
	})

	t.Run("returns storage failure", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database is locked")
		index := &mock.IndexService{
			RebuildFn: func(context.Context, bool) (*docindex.Build, error) { return nil, dbErr },
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Index: index}

		err := (&main.BuildCmd{}).Run(deps)

		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, stderr.String(), "error: Internal error")
	})
}
