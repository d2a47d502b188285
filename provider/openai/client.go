package openai

import (
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
	"github.com/AIGeekSquad/image-generator-sub000/model"
)

// Name is the backend name registered with the selection registry.
const Name = "openai"

// Client wraps the OpenAI SDK to implement imagegen.Provider.
type Client struct {
	client   *openai.Client
	model    string
	resolver *imagegen.ImageResolver
}

// New creates a new OpenAI client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		model:    model.DefaultOpenAIModel.String(),
		resolver: imagegen.NewImageResolver(nil),
	}
	requestOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	for _, opt := range opts {
		requestOpts = opt(c, requestOpts)
	}
	client := openai.NewClient(requestOpts...)
	c.client = &client
	return c
}

// ClientOption configures the OpenAI client. Options may append SDK request
// options as well as mutate the client.
type ClientOption func(*Client, []option.RequestOption) []option.RequestOption

// WithModel sets the default model for requests.
func WithModel(m string) ClientOption {
	return func(c *Client, ro []option.RequestOption) []option.RequestOption {
		c.model = m
		return ro
	}
}

// WithBaseURL points the client at a compatible alternative endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client, ro []option.RequestOption) []option.RequestOption {
		return append(ro, option.WithBaseURL(baseURL))
	}
}

// WithHTTPClient injects the HTTP client used for both SDK calls and image
// reference fetches. Callers own pooling and timeouts.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client, ro []option.RequestOption) []option.RequestOption {
		c.resolver = imagegen.NewImageResolver(hc)
		return append(ro, option.WithHTTPClient(hc))
	}
}

// Name returns the backend name.
func (c *Client) Name() string { return Name }

// SupportsOperation reports whether the backend implements op.
func (c *Client) SupportsOperation(op imagegen.Operation) bool {
	switch op {
	case imagegen.OperationGenerate, imagegen.OperationEdit, imagegen.OperationVariation:
		return true
	}
	return false
}

var _ imagegen.Provider = (*Client)(nil)
