package imagegen

// Role represents the role of a message sender in an image conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn of an image conversation: text plus any images
// produced or referenced in that turn. Image entries use the same reference
// forms as request arguments (data URL, http(s) URL, or raw base64).
type Message struct {
	Role   Role     `json:"role"`
	Text   string   `json:"text"`
	Images []string `json:"images,omitempty"`
}
