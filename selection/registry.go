package selection

import (
	"slices"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

// Registry holds the set of known backend factories. The collection is fixed
// at construction and order-preserving; registration order is the final
// tie-break for equally-scored candidates.
//
// Registry holds no request-scoped state and is safe for unlimited
// concurrent use.
type Registry struct {
	factories []imagegen.Factory
}

// NewRegistry creates a Registry over the given factories. The slice is
// copied; later mutation of the argument does not affect the registry.
func NewRegistry(factories ...imagegen.Factory) *Registry {
	return &Registry{factories: slices.Clone(factories)}
}

// Factories returns all registered factories in registration order.
func (r *Registry) Factories() []imagegen.Factory {
	return slices.Clone(r.factories)
}

// AvailableFactories returns the factories whose CanCreate predicate passes
// for env. Availability is re-evaluated on every call, never cached, because
// it may depend on configuration that changes between calls.
func (r *Registry) AvailableFactories(env imagegen.Environment) []imagegen.Factory {
	available := make([]imagegen.Factory, 0, len(r.factories))
	for _, f := range r.factories {
		if f.CanCreate(env) {
			available = append(available, f)
		}
	}
	return available
}

// FactoriesForOperation returns the available factories whose capabilities
// include op.
func (r *Registry) FactoriesForOperation(env imagegen.Environment, op imagegen.Operation) []imagegen.Factory {
	var matched []imagegen.Factory
	for _, f := range r.AvailableFactories(env) {
		if f.Metadata().Capabilities.SupportsOperation(op) {
			matched = append(matched, f)
		}
	}
	return matched
}

// FactoriesForModel returns the available factories that can plausibly serve
// model: those that list it explicitly, plus those that accept arbitrary
// models.
func (r *Registry) FactoriesForModel(env imagegen.Environment, model string) []imagegen.Factory {
	var matched []imagegen.Factory
	for _, f := range r.AvailableFactories(env) {
		caps := f.Metadata().Capabilities
		if caps.SupportsModel(model) || caps.AcceptsCustomModels {
			matched = append(matched, f)
		}
	}
	return matched
}
