package openai

import (
	"context"
	"net/http"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
	"github.com/AIGeekSquad/image-generator-sub000/model"
)

// Environment keys consumed by the factory.
const (
	// APIKeyEnv must be set for the backend to be available.
	APIKeyEnv = "OPENAI_API_KEY"
	// BaseURLEnv optionally points at a compatible alternative endpoint.
	BaseURLEnv = "OPENAI_BASE_URL"
)

// Priority is the backend's static baseline rank.
const Priority = 100

// Factory describes and lazily constructs the OpenAI backend.
type Factory struct {
	httpClient *http.Client
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithFactoryHTTPClient injects the HTTP client passed to providers this
// factory creates.
func WithFactoryHTTPClient(hc *http.Client) FactoryOption {
	return func(f *Factory) {
		f.httpClient = hc
	}
}

// NewFactory creates the OpenAI backend factory.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the backend name.
func (f *Factory) Name() string { return Name }

// Metadata returns the backend's selection metadata.
func (f *Factory) Metadata() imagegen.ProviderMetadata {
	return imagegen.ProviderMetadata{
		Name:        Name,
		Description: "OpenAI Images API (GPT Image and DALL-E families): generation, editing, and variations",
		Capabilities: imagegen.CapabilityDescriptor{
			ExampleModels: model.IDs(model.OpenAIModels()),
			SupportedOperations: []imagegen.Operation{
				imagegen.OperationGenerate,
				imagegen.OperationEdit,
				imagegen.OperationVariation,
			},
			DefaultModel:        model.DefaultOpenAIModel.String(),
			AcceptsCustomModels: true,
			SupportsMultiModal:  false,
			Features: map[string]string{
				"quality": "standard,hd",
				"style":   "vivid,natural",
				"mask":    "supported",
			},
		},
		Requirements: []string{APIKeyEnv},
		Priority:     Priority,
	}
}

// CanCreate reports whether the API key is present in env.
func (f *Factory) CanCreate(env imagegen.Environment) bool {
	return env.Get(APIKeyEnv) != ""
}

// Create constructs the provider from env.
func (f *Factory) Create(_ context.Context, env imagegen.Environment) (imagegen.Provider, error) {
	apiKey := env.Get(APIKeyEnv)
	if apiKey == "" {
		return nil, imagegen.NewPermanentError("openai: "+APIKeyEnv+" is not set", 0, nil)
	}

	opts := []ClientOption{}
	if baseURL := env.Get(BaseURLEnv); baseURL != "" {
		opts = append(opts, WithBaseURL(baseURL))
	}
	if f.httpClient != nil {
		opts = append(opts, WithHTTPClient(f.httpClient))
	}
	return New(apiKey, opts...), nil
}

var _ imagegen.Factory = (*Factory)(nil)
