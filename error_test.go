package docindex_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docindex.Errorf(docindex.ENOTFOUND, "entry %q not found", "crowbar/README.md")

	assert.Equal(t, docindex.ENOTFOUND, docindex.ErrorCode(err))
	assert.Equal(t, "entry \"crowbar/README.md\" not found", docindex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docindex.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docindex.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("build: %w", docindex.Errorf(docindex.ECONFLICT, "duplicate name"))

	assert.Equal(t, docindex.ECONFLICT, docindex.ErrorCode(err))
	assert.Equal(t, "duplicate name", docindex.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, docindex.EINTERNAL, docindex.ErrorCode(err))
	assert.Equal(t, "Internal error", docindex.ErrorMessage(err))
}
