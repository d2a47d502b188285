package imagegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionContextFailedProviders(t *testing.T) {
	t.Run("marks and checks names case-insensitively", func(t *testing.T) {
		var ctx SelectionContext
		ctx.MarkFailed("OpenAI")

		assert.True(t, ctx.HasFailed("openai"))
		assert.True(t, ctx.HasFailed("OPENAI"))
		assert.False(t, ctx.HasFailed("google"))
	})

	t.Run("zero value reports nothing failed", func(t *testing.T) {
		var ctx SelectionContext
		assert.False(t, ctx.HasFailed("openai"))
	})

	t.Run("stores lowercase keys", func(t *testing.T) {
		var ctx SelectionContext
		ctx.MarkFailed("Google")

		_, ok := ctx.FailedProviders["google"]
		assert.True(t, ok)
		assert.Len(t, ctx.FailedProviders, 1)
	})
}
