package imagegen

import "strings"

// CapabilityDescriptor declares what a backend implementation can do. It is
// produced by a backend's factory and consumed only by the selector, never
// by the provider itself.
type CapabilityDescriptor struct {
	// ExampleModels is a non-exhaustive hint of models the backend serves.
	// It is NOT an allow-list: backends with AcceptsCustomModels set may
	// serve models that are not listed here.
	ExampleModels []string

	// SupportedOperations lists the operations the backend implements.
	// A backend whose list omits an operation is never selected for it.
	SupportedOperations []Operation

	// DefaultModel is used when the request does not name a model.
	DefaultModel string

	// AcceptsCustomModels indicates the backend will attempt arbitrary
	// model identifiers beyond ExampleModels.
	AcceptsCustomModels bool

	// SupportsMultiModal indicates the backend can consume a conversation
	// transcript (text plus images) rather than a single prompt.
	SupportsMultiModal bool

	// Features is a free-form feature map for capability tags that have no
	// dedicated field (advisory only).
	Features map[string]string
}

// SupportsOperation reports whether op appears in SupportedOperations.
func (d CapabilityDescriptor) SupportsOperation(op Operation) bool {
	for _, supported := range d.SupportedOperations {
		if supported == op {
			return true
		}
	}
	return false
}

// SupportsModel reports whether model appears in ExampleModels
// (case-insensitive).
func (d CapabilityDescriptor) SupportsModel(model string) bool {
	for _, m := range d.ExampleModels {
		if strings.EqualFold(m, model) {
			return true
		}
	}
	return false
}

// ProviderMetadata describes a backend factory for selection purposes.
type ProviderMetadata struct {
	// Name is the backend's unique name. Matching is case-insensitive.
	Name string

	// Description is a human-readable summary for diagnostics and listings.
	Description string

	// Capabilities declares what the backend can do.
	Capabilities CapabilityDescriptor

	// Requirements lists the environment keys that must be set for the
	// backend to be available (e.g. API key variables).
	Requirements []string

	// Priority is the static baseline rank, independent of any request.
	// Higher wins among otherwise equal candidates.
	Priority int
}
