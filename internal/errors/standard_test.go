package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOutOfBounds(t *testing.T) {
	err := IndexOutOfBounds(5, 3)

	assert.Equal(t, CategoryBounds, err.Category)
	assert.Equal(t, "INDEX_OUT_OF_BOUNDS", err.Code)
	assert.Equal(t, 5, err.Context["index"])
	assert.Equal(t, 3, err.Context["length"])
	assert.Contains(t, err.Error(), "Index 5 out of bounds for length 3")
	assert.True(t, stderrors.Is(err, ErrIndexOutOfBounds))
	assert.False(t, stderrors.Is(err, ErrNodeAlreadyAttached))
}

func TestSentinelSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", NodeAlreadyAttached("SimpleIdentifier", "Block", "ArgumentList"))
	assert.True(t, stderrors.Is(wrapped, ErrNodeAlreadyAttached))

	var std *StandardError
	require.True(t, stderrors.As(wrapped, &std))
	assert.Equal(t, CategoryOwnership, std.Category)
}

func TestInvalidDocument(t *testing.T) {
	err := InvalidDocument(4, 7, "unknown expression form %q", "lambda")
	assert.Contains(t, err.Message, `4:7: unknown expression form "lambda"`)
	assert.True(t, stderrors.Is(err, ErrInvalidDocument))
}

func TestCallerIsRecorded(t *testing.T) {
	err := NewStandardError(CategoryValidation, "X", "msg", nil)
	assert.Contains(t, err.Caller, "TestCallerIsRecorded")
	assert.Nil(t, err.Unwrap())
}
