package main_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/docindex"
	main "github.com/fwojciec/docindex/cmd/docindex"
	"github.com/fwojciec/docindex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []*docindex.Entry {
	return []*docindex.Entry{
		{Name: "core/faq.md", Description: "FAQ", Order: docindex.DefaultOrder, Parent: "core/README.md", Module: "core"},
		{Name: "core/README.md", Description: "Core", Order: docindex.DefaultOrder, Module: "core"},
		{Name: "core/01_intro/README.md", Description: "Intro", Order: "000001", Parent: "core/README.md", Module: "core"},
	}
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists entries in index order", func(t *testing.T) {
		t.Parallel()

		var got docindex.EntryFilter
		entries := &mock.EntryService{
			FindEntriesFn: func(_ context.Context, filter docindex.EntryFilter) ([]*docindex.Entry, error) {
				got = filter
				return sampleEntries(), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Entries: entries}

		err := (&main.ListCmd{Parent: "core/README.md", Module: "core"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.Parent)
		assert.Equal(t, "core/README.md", *got.Parent)
		require.NotNil(t, got.Module)
		assert.Equal(t, "core", *got.Module)
		assert.False(t, got.Roots)

		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "000001    core/01_intro/README.md  Intro", lines[0])
		assert.Equal(t, "009999  core/README.md  Core", lines[1])
		assert.Equal(t, "009999  core/faq.md  FAQ", lines[2])
	})

	t.Run("passes roots filter", func(t *testing.T) {
		t.Parallel()

		var got docindex.EntryFilter
		entries := &mock.EntryService{
			FindEntriesFn: func(_ context.Context, filter docindex.EntryFilter) ([]*docindex.Entry, error) {
				got = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Entries: entries}

		err := (&main.ListCmd{Roots: true}).Run(deps)

		require.NoError(t, err)
		assert.True(t, got.Roots)
		assert.Nil(t, got.Parent)
		assert.Contains(t, stdout.String(), "No entries found")
	})

	t.Run("returns error when FindEntries fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		entries := &mock.EntryService{
			FindEntriesFn: func(context.Context, docindex.EntryFilter) ([]*docindex.Entry, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Entries: entries}

		err := (&main.ListCmd{}).Run(deps)

		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestIndexCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints rendered index", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryService{
			FindEntriesFn: func(context.Context, docindex.EntryFilter) ([]*docindex.Entry, error) {
				return sampleEntries(), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Entries: entries}

		err := (&main.IndexCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, docindex.RenderIndex(docindex.NewTree(sampleEntries())), stdout.String())
	})

	t.Run("shows hint when empty", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryService{
			FindEntriesFn: func(context.Context, docindex.EntryFilter) ([]*docindex.Entry, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Entries: entries}

		require.NoError(t, (&main.IndexCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "docindex build")
	})
}

func TestModulesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists modules in registration order", func(t *testing.T) {
		t.Parallel()

		modules := &mock.ModuleService{
			FindModulesFn: func(context.Context) ([]*docindex.Module, error) {
				return []*docindex.Module{
					{Name: "core", SourcePath: "/src/core", SourceURL: "https://github.com/opencrowbar/core"},
					{Name: "hardware", SourcePath: "/src/hardware"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Modules: modules}

		require.NoError(t, (&main.ModulesCmd{}).Run(deps))
		assert.Equal(t, "core  /src/core  https://github.com/opencrowbar/core\nhardware  /src/hardware\n", stdout.String())
	})

	t.Run("shows hint when empty", func(t *testing.T) {
		t.Parallel()

		modules := &mock.ModuleService{
			FindModulesFn: func(context.Context) ([]*docindex.Module, error) { return nil, nil },
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Modules: modules}

		require.NoError(t, (&main.ModulesCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "docindex add")
	})
}
