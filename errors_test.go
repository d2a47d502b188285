package imagegen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizedErrors(t *testing.T) {
	t.Run("category predicates", func(t *testing.T) {
		transient := NewTransientError("rate limited", 429, nil)
		permanent := NewPermanentError("invalid key", 401, nil)
		userInput := NewUserInputError("empty prompt", 400, nil)

		assert.True(t, IsTransient(transient))
		assert.False(t, IsTransient(permanent))

		assert.True(t, IsPermanent(permanent))
		assert.False(t, IsPermanent(userInput))

		assert.True(t, IsUserInput(userInput))
		assert.False(t, IsUserInput(transient))
	})

	t.Run("predicates see through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("calling backend: %w", NewTransientError("overloaded", 503, nil))
		assert.True(t, IsTransient(wrapped))
		assert.Equal(t, 503, StatusCodeOf(wrapped))
	})

	t.Run("uncategorized errors match no predicate", func(t *testing.T) {
		err := errors.New("plain")
		assert.False(t, IsTransient(err))
		assert.False(t, IsPermanent(err))
		assert.False(t, IsUserInput(err))
		assert.Zero(t, StatusCodeOf(err))
	})

	t.Run("message includes the cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewTransientError("upload failed", 0, cause)

		assert.Equal(t, "upload failed: connection reset", err.Error())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("retryable only for transient", func(t *testing.T) {
		assert.True(t, NewTransientError("x", 0, nil).Retryable())
		assert.False(t, NewPermanentError("x", 0, nil).Retryable())
	})
}

func TestImageError(t *testing.T) {
	cause := errors.New("illegal base64 data")
	err := &ImageError{Op: "decode", Ref: "base64", Err: cause}

	require.EqualError(t, err, "image decode error for base64: illegal base64 data")
	assert.True(t, errors.Is(err, cause))
}
