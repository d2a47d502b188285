package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

func TestParseConversation(t *testing.T) {
	t.Run("decodes a transcript", func(t *testing.T) {
		raw := `[
			{"role":"user","text":"draw a lighthouse"},
			{"role":"assistant","text":"here it is","images":["aGVsbG8="]},
			{"role":"user","text":"make it night time"}
		]`

		messages := ParseConversation(raw)
		require.Len(t, messages, 3)
		assert.Equal(t, imagegen.RoleUser, messages[0].Role)
		assert.Equal(t, "draw a lighthouse", messages[0].Text)
		assert.Equal(t, imagegen.RoleAssistant, messages[1].Role)
		assert.Equal(t, []string{"aGVsbG8="}, messages[1].Images)
		assert.Equal(t, "make it night time", messages[2].Text)
	})

	t.Run("empty array decodes to an empty non-nil transcript", func(t *testing.T) {
		messages := ParseConversation(`[]`)
		require.NotNil(t, messages)
		assert.Empty(t, messages)
	})

	t.Run("malformed input yields nil", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
		}{
			{"empty string", ""},
			{"whitespace", "   \n\t"},
			{"json null", "null"},
			{"json object", `{"role":"user"}`},
			{"json string", `"hello"`},
			{"truncated array", `[{"role":"user"`},
			{"not json at all", "draw a boat"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Nil(t, ParseConversation(tt.input))
			})
		}
	})
}
