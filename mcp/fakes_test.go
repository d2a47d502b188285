package mcp

import (
	"context"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

// stubProvider records invocations and returns a scripted response.
type stubProvider struct {
	name string
	resp *imagegen.ImageResponse
	err  error

	prompts       []string
	images        []string
	conversations [][]imagegen.Message
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) SupportsOperation(imagegen.Operation) bool { return true }

func (p *stubProvider) GenerateImage(_ context.Context, prompt string, _ ...imagegen.ImageOption) (*imagegen.ImageResponse, error) {
	p.prompts = append(p.prompts, prompt)
	return p.resp, p.err
}

func (p *stubProvider) EditImage(_ context.Context, prompt, image, _ string, _ ...imagegen.ImageOption) (*imagegen.ImageResponse, error) {
	p.prompts = append(p.prompts, prompt)
	p.images = append(p.images, image)
	return p.resp, p.err
}

func (p *stubProvider) CreateVariation(_ context.Context, image string, _ ...imagegen.ImageOption) (*imagegen.ImageResponse, error) {
	p.images = append(p.images, image)
	return p.resp, p.err
}

// conversationalStub additionally accepts transcripts.
type conversationalStub struct {
	stubProvider
}

func (p *conversationalStub) ContinueConversation(_ context.Context, conversation []imagegen.Message, _ ...imagegen.ImageOption) (*imagegen.ImageResponse, error) {
	p.conversations = append(p.conversations, conversation)
	return p.resp, p.err
}

// stubFactory always constructs the same provider instance.
type stubFactory struct {
	name     string
	priority int
	provider imagegen.Provider
}

func (f *stubFactory) Name() string { return f.name }

func (f *stubFactory) Metadata() imagegen.ProviderMetadata {
	return imagegen.ProviderMetadata{
		Name: f.name,
		Capabilities: imagegen.CapabilityDescriptor{
			SupportedOperations: []imagegen.Operation{
				imagegen.OperationGenerate,
				imagegen.OperationEdit,
				imagegen.OperationVariation,
			},
			AcceptsCustomModels: true,
		},
		Priority: f.priority,
	}
}

func (f *stubFactory) CanCreate(imagegen.Environment) bool { return true }

func (f *stubFactory) Create(context.Context, imagegen.Environment) (imagegen.Provider, error) {
	return f.provider, nil
}

func base64Response(data, mime string) *imagegen.ImageResponse {
	return &imagegen.ImageResponse{
		Images: []imagegen.GeneratedImage{{Base64: data, MimeType: mime}},
	}
}
