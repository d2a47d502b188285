package imagegen

import "strings"

// SelectionContext is the per-request bundle of selection hints and failure
// exclusions. Construct a fresh value for every logical request.
//
// The FailedProviders set is caller-owned, single-writer state: it must never
// be shared between concurrently in-flight requests. There is no internal
// locking.
type SelectionContext struct {
	// PreferredProvider is an optional backend name hint. When set and the
	// named backend is eligible, it always wins.
	PreferredProvider string

	// Model is the required model identifier, if any.
	Model string

	// Operation is the required operation.
	Operation Operation

	// RequiredCapabilities lists extra capability tags (advisory; matched
	// against CapabilityDescriptor.Features keys).
	RequiredCapabilities []string

	// FailedProviders holds lowercase names of backends already known to
	// have failed for this request.
	FailedProviders map[string]struct{}
}

// MarkFailed records name as failed for this request. Names are compared
// case-insensitively.
func (c *SelectionContext) MarkFailed(name string) {
	if c.FailedProviders == nil {
		c.FailedProviders = make(map[string]struct{})
	}
	c.FailedProviders[strings.ToLower(name)] = struct{}{}
}

// HasFailed reports whether name has been marked failed.
func (c *SelectionContext) HasFailed(name string) bool {
	if c.FailedProviders == nil {
		return false
	}
	_, ok := c.FailedProviders[strings.ToLower(name)]
	return ok
}
