package docindex_test

import (
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOrder(t *testing.T) {
	t.Parallel()

	t.Run("pads numeric prefix", func(t *testing.T) {
		t.Parallel()

		order, err := docindex.ResolveOrder("crowbar/01_intro/02_install.md")
		require.NoError(t, err)
		assert.Equal(t, "000002", order)
	})

	t.Run("index uses its section directory", func(t *testing.T) {
		t.Parallel()

		order, err := docindex.ResolveOrder("crowbar/01_intro/README.md")
		require.NoError(t, err)
		assert.Equal(t, "000001", order)
	})

	t.Run("unnumbered entries use default", func(t *testing.T) {
		t.Parallel()

		order, err := docindex.ResolveOrder("crowbar/faq.md")
		require.NoError(t, err)
		assert.Equal(t, docindex.DefaultOrder, order)

		order, err = docindex.ResolveOrder("crowbar/README.md")
		require.NoError(t, err)
		assert.Equal(t, "009999", order)
	})

	t.Run("module name never orders the doc root index", func(t *testing.T) {
		t.Parallel()

		order, err := docindex.ResolveOrder("01_core/README.md")
		require.NoError(t, err)
		assert.Equal(t, "009999", order)

		order, err = docindex.ResolveOrder("10_net/readme.md")
		require.NoError(t, err)
		assert.Equal(t, docindex.DefaultOrder, order)

		order, err = docindex.ResolveOrder("10_net/03_setup/README.md")
		require.NoError(t, err)
		assert.Equal(t, "000003", order)
	})

	t.Run("only the final segment counts", func(t *testing.T) {
		t.Parallel()

		order, err := docindex.ResolveOrder("crowbar/05_ops/faq.md")
		require.NoError(t, err)
		assert.Equal(t, docindex.DefaultOrder, order)
	})

	t.Run("prefix wider than key falls back to sentinel", func(t *testing.T) {
		t.Parallel()

		order, err := docindex.ResolveOrder("crowbar/1234567_big.md")
		require.Error(t, err)
		assert.Equal(t, docindex.EORDER, docindex.ErrorCode(err))
		assert.Equal(t, docindex.ErrorOrder, order)
	})

	t.Run("unparsable prefix falls back to sentinel", func(t *testing.T) {
		t.Parallel()

		order, err := docindex.ResolveOrder("crowbar/99999999999999999999999_big.md")
		require.Error(t, err)
		assert.Equal(t, docindex.ErrorOrder, order)
	})
}

func TestValidOrder(t *testing.T) {
	t.Parallel()

	assert.True(t, docindex.ValidOrder("000001"))
	assert.True(t, docindex.ValidOrder(docindex.ErrorOrder))
	assert.False(t, docindex.ValidOrder("1"))
	assert.False(t, docindex.ValidOrder("00000a"))
}
