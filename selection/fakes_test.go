package selection

import (
	"context"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

// fakeProvider is a minimal Provider for selection tests. Operations are
// never invoked by the selector, so they return empty responses.
type fakeProvider struct {
	name string
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) SupportsOperation(imagegen.Operation) bool { return true }

func (p *fakeProvider) GenerateImage(_ context.Context, _ string, _ ...imagegen.ImageOption) (*imagegen.ImageResponse, error) {
	return &imagegen.ImageResponse{}, nil
}

func (p *fakeProvider) EditImage(_ context.Context, _, _, _ string, _ ...imagegen.ImageOption) (*imagegen.ImageResponse, error) {
	return &imagegen.ImageResponse{}, nil
}

func (p *fakeProvider) CreateVariation(_ context.Context, _ string, _ ...imagegen.ImageOption) (*imagegen.ImageResponse, error) {
	return &imagegen.ImageResponse{}, nil
}

// fakeFactory is a configurable Factory for selection tests.
type fakeFactory struct {
	name     string
	priority int
	ops      []imagegen.Operation
	models   []string
	custom   bool

	// requires gates CanCreate on an environment key; empty means always
	// available.
	requires string

	// createFailures makes the first N Create calls fail with createErr.
	// A negative value fails every call.
	createFailures int
	createErr      error

	createCalls int
}

func (f *fakeFactory) Name() string { return f.name }

func (f *fakeFactory) Metadata() imagegen.ProviderMetadata {
	return imagegen.ProviderMetadata{
		Name: f.name,
		Capabilities: imagegen.CapabilityDescriptor{
			ExampleModels:       f.models,
			SupportedOperations: f.ops,
			AcceptsCustomModels: f.custom,
		},
		Priority: f.priority,
	}
}

func (f *fakeFactory) CanCreate(env imagegen.Environment) bool {
	if f.requires == "" {
		return true
	}
	return env.Get(f.requires) != ""
}

func (f *fakeFactory) Create(_ context.Context, _ imagegen.Environment) (imagegen.Provider, error) {
	f.createCalls++
	if f.createFailures < 0 || f.createCalls <= f.createFailures {
		if f.createErr != nil {
			return nil, f.createErr
		}
		return nil, imagegen.NewTransientError("backend unavailable", 503, nil)
	}
	return &fakeProvider{name: f.name}, nil
}

var allOperations = []imagegen.Operation{
	imagegen.OperationGenerate,
	imagegen.OperationEdit,
	imagegen.OperationVariation,
}

// generateFactory builds a factory supporting every operation with no model
// restrictions beyond the given list.
func generateFactory(name string, priority int, models ...string) *fakeFactory {
	return &fakeFactory{
		name:     name,
		priority: priority,
		ops:      allOperations,
		models:   models,
		custom:   true,
	}
}
