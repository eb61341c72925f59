package docref_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/docref"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docref.Errorf(docref.ENOTFOUND, "library %q not found", "dart:core")

	assert.Equal(t, docref.ENOTFOUND, docref.ErrorCode(err))
	assert.Equal(t, "library \"dart:core\" not found", docref.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docref.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docref.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("import: %w", docref.Errorf(docref.ECONFLICT, "duplicate"))

	assert.Equal(t, docref.ECONFLICT, docref.ErrorCode(err))
	assert.Equal(t, "duplicate", docref.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, docref.EINTERNAL, docref.ErrorCode(err))
	assert.Equal(t, "Internal error.", docref.ErrorMessage(err))
}
