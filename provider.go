package imagegen

import "context"

// Operation identifies an image operation a backend may support.
type Operation string

// String returns the operation identifier.
func (o Operation) String() string { return string(o) }

// Supported operations.
const (
	OperationGenerate  Operation = "generate"
	OperationEdit      Operation = "edit"
	OperationVariation Operation = "variation"
)

// Provider is an image-generation backend. Implementations wrap a specific
// third-party service SDK; their internal HTTP behavior is their own concern.
//
// Operations a provider does not support must return false from
// SupportsOperation and are never routed to it by the selector.
type Provider interface {
	// Name returns the provider's unique name (case-insensitive key).
	Name() string

	// SupportsOperation reports whether the provider implements op.
	SupportsOperation(op Operation) bool

	// GenerateImage creates images from a text prompt.
	GenerateImage(ctx context.Context, prompt string, opts ...ImageOption) (*ImageResponse, error)

	// EditImage modifies an existing image according to a text prompt.
	// The image and optional mask are references: a data URL, an absolute
	// http(s) URL, or raw base64 data.
	EditImage(ctx context.Context, prompt, image, mask string, opts ...ImageOption) (*ImageResponse, error)

	// CreateVariation produces variations of an existing image.
	CreateVariation(ctx context.Context, image string, opts ...ImageOption) (*ImageResponse, error)
}

// ConversationalProvider is implemented by providers that can continue a
// multi-turn image conversation (iterative refinement with prior images).
type ConversationalProvider interface {
	Provider

	// ContinueConversation generates images from an ordered transcript of
	// prior turns instead of a single prompt.
	ContinueConversation(ctx context.Context, conversation []Message, opts ...ImageOption) (*ImageResponse, error)
}
