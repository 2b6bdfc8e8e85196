package docindex_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIndex(t *testing.T) {
	t.Parallel()

	t.Run("lists roots then nested index", func(t *testing.T) {
		t.Parallel()

		tree := docindex.NewTree([]*docindex.Entry{
			{Name: "a/README.md", Description: "A Overview", Order: "009999"},
			{Name: "a/01_intro/README.md", Description: "Intro", Order: "000001", Parent: "a/README.md"},
			{Name: "b/README.md", Description: "B Overview", Order: "009999"},
		})

		out := docindex.RenderIndex(tree)

		assert.True(t, strings.HasPrefix(out, "_Autogenerated, do not edit!_\n"+
			"\n# [Project Welcome Page](../README.md)\n"+
			"\n# Table of Contents\n"))
		assert.Contains(t, out, "# Table of Contents\n\n"+
			"  1. [A Overview](./a/README.md)\n"+
			"  1. [B Overview](./b/README.md)\n")
		assert.Contains(t, out, "# Documentation Full Index\n\n"+
			"1. [A Overview](./a/README.md)\n"+
			"  1. [Intro](./a/01_intro/README.md)\n"+
			"1. [B Overview](./b/README.md)\n")
	})

	t.Run("renders siblings in order key sequence", func(t *testing.T) {
		t.Parallel()

		tree := docindex.NewTree([]*docindex.Entry{
			{Name: "m/README.md", Description: "Root", Order: "009999"},
			{Name: "m/other.md", Description: "Other", Order: "009999", Parent: "m/README.md"},
			{Name: "m/02_second.md", Description: "Second", Order: "000002", Parent: "m/README.md"},
			{Name: "m/01_first.md", Description: "First", Order: "000001", Parent: "m/README.md"},
		})

		out := docindex.RenderIndex(tree)

		first := strings.Index(out, "[First]")
		second := strings.Index(out, "[Second]")
		other := strings.Index(out, "[Other]")
		require.True(t, first > 0 && second > 0 && other > 0)
		assert.Less(t, first, second)
		assert.Less(t, second, other)
	})

	t.Run("stops descending below level three", func(t *testing.T) {
		t.Parallel()

		tree := docindex.NewTree([]*docindex.Entry{
			{Name: "m/README.md", Description: "L0", Order: "009999"},
			{Name: "m/a/README.md", Description: "L1", Order: "009999", Parent: "m/README.md"},
			{Name: "m/a/b/README.md", Description: "L2", Order: "009999", Parent: "m/a/README.md"},
			{Name: "m/a/b/c/README.md", Description: "L3", Order: "009999", Parent: "m/a/b/README.md"},
			{Name: "m/a/b/c/page.md", Description: "Deep page", Order: "009999", Parent: "m/a/b/c/README.md"},
			{Name: "m/a/b/c/d/README.md", Description: "L4", Order: "009999", Parent: "m/a/b/c/README.md"},
		})

		out := docindex.RenderIndex(tree)

		assert.Contains(t, out, "      1. [L3](./m/a/b/c/README.md)\n")
		assert.NotContains(t, out, "L4")
		assert.NotContains(t, out, "Deep page")
	})
}

func TestWriteIndex(t *testing.T) {
	t.Parallel()

	tree := docindex.NewTree([]*docindex.Entry{
		{Name: "a/README.md", Description: "A", Order: "009999"},
	})

	var buf bytes.Buffer
	require.NoError(t, docindex.WriteIndex(&buf, tree))
	assert.Equal(t, docindex.RenderIndex(tree), buf.String())
}
