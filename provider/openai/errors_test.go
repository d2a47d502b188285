package openai

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

func apiError(t *testing.T, code int) *openai.Error {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "https://api.openai.com/v1/images/generations", nil)
	require.NoError(t, err)
	return &openai.Error{
		StatusCode: code,
		Request:    req,
		Response:   &http.Response{StatusCode: code},
	}
}

func TestWrapError(t *testing.T) {
	t.Run("categorizes API errors by status code", func(t *testing.T) {
		tests := []struct {
			code     int
			category imagegen.ErrorCategory
		}{
			{401, imagegen.ErrorPermanent},
			{403, imagegen.ErrorPermanent},
			{429, imagegen.ErrorTransient},
			{500, imagegen.ErrorTransient},
			{503, imagegen.ErrorTransient},
			{400, imagegen.ErrorUserInput},
			{404, imagegen.ErrorUserInput},
			{422, imagegen.ErrorUserInput},
			{418, imagegen.ErrorPermanent},
		}

		for _, tt := range tests {
			t.Run(fmt.Sprintf("%d", tt.code), func(t *testing.T) {
				wrapped := wrapError(apiError(t, tt.code))

				var ce imagegen.CategorizedError
				require.ErrorAs(t, wrapped, &ce)
				assert.Equal(t, tt.category, ce.Category())
				assert.Equal(t, tt.code, imagegen.StatusCodeOf(wrapped))
			})
		}
	})

	t.Run("auth failures become permanent", func(t *testing.T) {
		wrapped := wrapError(apiError(t, 401))
		assert.True(t, imagegen.IsPermanent(wrapped))
		assert.False(t, imagegen.IsTransient(wrapped))
	})

	t.Run("preserves the SDK error in the chain", func(t *testing.T) {
		wrapped := wrapError(apiError(t, 429))

		var apiErr *openai.Error
		require.ErrorAs(t, wrapped, &apiErr)
		assert.Equal(t, 429, apiErr.StatusCode)
	})

	t.Run("non-API errors pass through unchanged", func(t *testing.T) {
		netErr := errors.New("dial tcp: connection refused")
		assert.Equal(t, netErr, wrapError(netErr))
		assert.False(t, imagegen.IsPermanent(wrapError(netErr)))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, wrapError(nil))
	})
}
