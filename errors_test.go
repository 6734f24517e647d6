package sheetinspect

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessageAndKinds(t *testing.T) {
	err := newError(ErrFileAccess, "data.xlsx", fs.ErrNotExist)

	assert.Equal(t, "file access error: data.xlsx: file does not exist", err.Error())
	assert.ErrorIs(t, err, ErrFileAccess)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.False(t, errors.Is(err, ErrFormat))
	assert.Contains(t, string(err.Stack()), "newError")
}

func TestTraceFindsWrappedError(t *testing.T) {
	inner := newError(ErrFormat, "bad.xlsx", errors.New("zip: not a valid zip file"))
	wrapped := fmt.Errorf("inspect: %w", inner)

	assert.Equal(t, string(inner.Stack()), Trace(wrapped))
	assert.NotEmpty(t, Trace(errors.New("plain")))
}

func TestHint(t *testing.T) {
	err := newError(ErrDependencyMissing, "", nil)
	err.Hint = "install it with: go get example.com/reader"

	assert.Equal(t, "dependency missing", err.Error())
	assert.Equal(t, "install it with: go get example.com/reader", Hint(fmt.Errorf("wrap: %w", err)))
	assert.Empty(t, Hint(errors.New("plain")))
}
