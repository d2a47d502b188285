package google

import (
	"context"
	"net/http"

	"google.golang.org/genai"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
	"github.com/AIGeekSquad/image-generator-sub000/model"
)

// Name is the backend name registered with the selection registry.
const Name = "google"

// Client wraps the Google GenAI SDK to implement imagegen.Provider.
type Client struct {
	client     *genai.Client
	model      string
	httpClient *http.Client
	resolver   *imagegen.ImageResolver
}

// New creates a new Google GenAI client with the given API key.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	c := &Client{
		model:    model.DefaultGoogleModel.String(),
		resolver: imagegen.NewImageResolver(nil),
	}
	for _, opt := range opts {
		opt(c)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	})
	if err != nil {
		return nil, err
	}
	c.client = client
	return c, nil
}

// ClientOption configures the Google client.
type ClientOption func(*Client)

// WithModel sets the default model for requests.
func WithModel(m string) ClientOption {
	return func(c *Client) {
		c.model = m
	}
}

// WithHTTPClient injects the HTTP client used for both SDK calls and image
// reference fetches. Callers own pooling and timeouts.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
		c.resolver = imagegen.NewImageResolver(hc)
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

var (
	_ imagegen.Provider               = (*Client)(nil)
	_ imagegen.ConversationalProvider = (*Client)(nil)
)
