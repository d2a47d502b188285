package imagegen

import (
	"context"
	"os"
)

// Environment provides configuration lookups for factory availability checks
// and provider construction. Implementations must be safe for concurrent use.
//
// Using an interface instead of os.Getenv keeps availability re-checkable in
// test harnesses where configuration changes between calls.
type Environment interface {
	// Get returns the value for key, or "" when unset.
	Get(key string) string
}

// MapEnvironment is an Environment backed by a plain map. Lookups on a nil
// map return "".
type MapEnvironment map[string]string

// Get returns the value for key, or "" when unset.
func (m MapEnvironment) Get(key string) string { return m[key] }

type osEnvironment struct{}

func (osEnvironment) Get(key string) string { return os.Getenv(key) }

// OSEnvironment returns an Environment backed by the process environment.
func OSEnvironment() Environment { return osEnvironment{} }

// Factory describes and lazily constructs a Provider. Factories are cheap,
// stateless values registered once at startup; the provider itself is only
// built when the selector picks it.
type Factory interface {
	// Name returns the backend's unique name (case-insensitive key).
	Name() string

	// Metadata returns the backend's selection metadata.
	Metadata() ProviderMetadata

	// CanCreate reports whether the backend can currently be constructed,
	// typically by checking its required configuration keys in env.
	CanCreate(env Environment) bool

	// Create constructs the Provider. Construction may perform I/O (client
	// handshakes, credential resolution) and honors ctx cancellation.
	Create(ctx context.Context, env Environment) (Provider, error)
}
