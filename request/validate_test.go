package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

func validArguments() *Arguments {
	return &Arguments{
		Prompt:         "a red fox",
		NumberOfImages: 1,
	}
}

func TestValidate(t *testing.T) {
	t.Run("accepts a minimal valid request", func(t *testing.T) {
		result := Validate(validArguments())
		assert.True(t, result.Valid())
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
	})

	t.Run("rejects nil arguments", func(t *testing.T) {
		result := Validate(nil)
		assert.False(t, result.Valid())
	})

	t.Run("requires a prompt or a conversation", func(t *testing.T) {
		args := validArguments()
		args.Prompt = "   "
		result := Validate(args)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "prompt or a conversation")

		args.Conversation = []imagegen.Message{{Role: imagegen.RoleUser, Text: "draw"}}
		assert.True(t, Validate(args).Valid())
	})

	t.Run("bounds numberOfImages", func(t *testing.T) {
		tests := []struct {
			count int
			valid bool
		}{
			{0, false},
			{-1, false},
			{1, true},
			{10, true},
			{11, false},
		}

		for _, tt := range tests {
			args := validArguments()
			args.NumberOfImages = tt.count
			assert.Equal(t, tt.valid, Validate(args).Valid(), "count=%d", tt.count)
		}
	})

	t.Run("names the original string in the size error", func(t *testing.T) {
		args := validArguments()
		args.Size = "gigantic"
		result := Validate(args)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], `"gigantic"`)
	})

	t.Run("size with a successful parse is accepted", func(t *testing.T) {
		args := validArguments()
		args.Size = "1024x1024"
		args.ParsedSize = ParseSize(args.Size)
		assert.True(t, Validate(args).Valid())
	})

	t.Run("checks quality and style enumerations exactly", func(t *testing.T) {
		args := validArguments()
		args.Quality = "HD"
		args.Style = "photorealistic"
		result := Validate(args)
		assert.Len(t, result.Errors, 2)

		args.Quality = "hd"
		args.Style = "natural"
		assert.True(t, Validate(args).Valid())
	})

	t.Run("rejects an empty conversation", func(t *testing.T) {
		args := validArguments()
		args.Conversation = []imagegen.Message{}
		result := Validate(args)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "at least one message")
	})

	t.Run("checks the image reference shape", func(t *testing.T) {
		tests := []struct {
			name  string
			image string
			valid bool
		}{
			{"absent", "", true},
			{"data URL", "data:image/png;base64,aGVsbG8=", true},
			{"https URL", "https://example.com/a.png", true},
			{"http URL", "http://example.com/a.png", true},
			{"base64", "aGVsbG8=", true},
			{"relative path", "./images/a.png", false},
			{"not base64", "!!!not-base64!!!", false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				args := validArguments()
				args.Image = tt.image
				assert.Equal(t, tt.valid, Validate(args).Valid())
			})
		}
	})

	t.Run("accumulates every violation instead of stopping at the first", func(t *testing.T) {
		args := &Arguments{
			NumberOfImages: -1,
			Size:           "bad",
			Quality:        "bogus",
			Style:          "bogus",
		}

		result := Validate(args)
		assert.False(t, result.Valid())
		assert.GreaterOrEqual(t, len(result.Errors), 5)

		joined := strings.Join(result.Errors, "\n")
		assert.Contains(t, joined, "prompt or a conversation")
		assert.Contains(t, joined, "numberOfImages")
		assert.Contains(t, joined, "size")
		assert.Contains(t, joined, "quality")
		assert.Contains(t, joined, "style")
	})

	t.Run("is idempotent", func(t *testing.T) {
		args := &Arguments{
			NumberOfImages: 99,
			Quality:        "bogus",
		}
		first := Validate(args)
		second := Validate(args)
		assert.Equal(t, first.Errors, second.Errors)
		assert.Equal(t, first.Warnings, second.Warnings)
	})
}
