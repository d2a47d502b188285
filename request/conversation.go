package request

import (
	"encoding/json"
	"strings"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

// ParseConversation decodes a JSON array of {role, text, images[]} objects
// into a conversation transcript. Any malformed input (empty, whitespace,
// non-array JSON, or a JSON null) yields nil rather than an error, making a
// bad transcript indistinguishable from an absent one; [Validate] then only
// sees "no conversation".
func ParseConversation(raw string) []imagegen.Message {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var messages []imagegen.Message
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil
	}
	if messages == nil {
		// JSON "null" decodes without error.
		return nil
	}
	return messages
}
