package model

import imagegen "github.com/AIGeekSquad/image-generator-sub000"

// Backend names used as model owners. These match the factory names
// registered with the selection registry.
const (
	BackendOpenAI = "openai"
	BackendGoogle = "google"
)

// ImageModel represents an image generation model from any backend.
type ImageModel struct {
	id         string
	backend    string
	operations []imagegen.Operation
	pricing    ImagePricing
}

// String returns the API identifier for this model.
func (m ImageModel) String() string { return m.id }

// Backend returns which backend serves this model.
func (m ImageModel) Backend() string { return m.backend }

// Operations returns the operations this model supports.
func (m ImageModel) Operations() []imagegen.Operation { return m.operations }

// Pricing returns the pricing for this model.
func (m ImageModel) Pricing() ImagePricing { return m.pricing }

var (
	generateOnly = []imagegen.Operation{imagegen.OperationGenerate}
	allOps       = []imagegen.Operation{imagegen.OperationGenerate, imagegen.OperationEdit, imagegen.OperationVariation}
)

// OpenAI Image Models
// Model pricing last verified: December 14, 2025
var (
	// GPT Image 1 Series
	GPTImage1     = ImageModel{id: "gpt-image-1", backend: BackendOpenAI, operations: allOps, pricing: ImagePricing{LowQuality: 0.011, MediumQuality: 0.042, HighQuality: 0.167}}
	GPTImage1Mini = ImageModel{id: "gpt-image-1-mini", backend: BackendOpenAI, operations: allOps, pricing: ImagePricing{LowQuality: 0.005, MediumQuality: 0.013, HighQuality: 0.052}}

	// DALL-E Series
	DallE3 = ImageModel{id: "dall-e-3", backend: BackendOpenAI, operations: generateOnly, pricing: ImagePricing{MediumQuality: 0.04, HighQuality: 0.08}}
	DallE2 = ImageModel{id: "dall-e-2", backend: BackendOpenAI, operations: allOps, pricing: ImagePricing{PerImage: 0.02}}

	// DefaultOpenAIModel is the recommended default OpenAI image model.
	DefaultOpenAIModel = GPTImage1
)

// Google Image Models
// Model pricing last verified: December 14, 2025
var (
	// Imagen 4 Series (generation only)
	Imagen4      = ImageModel{id: "imagen-4.0-generate-001", backend: BackendGoogle, operations: generateOnly, pricing: ImagePricing{PerImage: 0.04}}
	Imagen4Fast  = ImageModel{id: "imagen-4.0-fast-generate-001", backend: BackendGoogle, operations: generateOnly, pricing: ImagePricing{PerImage: 0.04}}
	Imagen4Ultra = ImageModel{id: "imagen-4.0-ultra-generate-001", backend: BackendGoogle, operations: generateOnly, pricing: ImagePricing{PerImage: 0.06}}

	// Gemini multimodal image models (generation, editing, variations)
	GeminiFlashImage = ImageModel{id: "gemini-2.5-flash-image", backend: BackendGoogle, operations: allOps, pricing: ImagePricing{PerImage: 0.039}}

	// DefaultGoogleModel is the recommended default Google image model.
	DefaultGoogleModel = Imagen4
)

// OpenAIModels lists the catalogued OpenAI image models.
func OpenAIModels() []ImageModel {
	return []ImageModel{GPTImage1, GPTImage1Mini, DallE3, DallE2}
}

// GoogleModels lists the catalogued Google image models.
func GoogleModels() []ImageModel {
	return []ImageModel{Imagen4, Imagen4Fast, Imagen4Ultra, GeminiFlashImage}
}

// IDs returns the API identifiers for models.
func IDs(models []ImageModel) []string {
	ids := make([]string, len(models))
	for i, m := range models {
		ids[i] = m.id
	}
	return ids
}
