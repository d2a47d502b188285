package google

import (
	"context"
	"net/http"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
	"github.com/AIGeekSquad/image-generator-sub000/model"
)

// Environment keys consumed by the factory. GOOGLE_API_KEY is accepted as an
// alias for GEMINI_API_KEY.
const (
	APIKeyEnv      = "GEMINI_API_KEY"
	APIKeyAliasEnv = "GOOGLE_API_KEY"
)

// Priority is the backend's static baseline rank.
const Priority = 90

// Factory describes and lazily constructs the Google backend.
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

// NewFactory creates the Google backend factory.
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
		Description: "Google GenAI (Imagen and Gemini image models): generation, editing, variations, and multi-turn refinement",
		Capabilities: imagegen.CapabilityDescriptor{
			ExampleModels: model.IDs(model.GoogleModels()),
			SupportedOperations: []imagegen.Operation{
				imagegen.OperationGenerate,
				imagegen.OperationEdit,
				imagegen.OperationVariation,
			},
			DefaultModel:        model.DefaultGoogleModel.String(),
			AcceptsCustomModels: true,
			SupportsMultiModal:  true,
			Features: map[string]string{
				"conversation": "supported",
				"aspect_ratio": "1:1,4:3,3:4,16:9,9:16",
			},
		},
		Requirements: []string{APIKeyEnv},
		Priority:     Priority,
	}
}

// CanCreate reports whether an API key is present in env.
func (f *Factory) CanCreate(env imagegen.Environment) bool {
	return apiKey(env) != ""
}

// Create constructs the provider from env.
func (f *Factory) Create(ctx context.Context, env imagegen.Environment) (imagegen.Provider, error) {
	key := apiKey(env)
	if key == "" {
		return nil, imagegen.NewPermanentError("google: "+APIKeyEnv+" is not set", 0, nil)
	}

	opts := []ClientOption{}
	if f.httpClient != nil {
		opts = append(opts, WithHTTPClient(f.httpClient))
	}
	return New(ctx, key, opts...)
}

func apiKey(env imagegen.Environment) string {
	if key := env.Get(APIKeyEnv); key != "" {
		return key
	}
	return env.Get(APIKeyAliasEnv)
}

var _ imagegen.Factory = (*Factory)(nil)
