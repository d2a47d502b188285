package selection

import (
	"fmt"
	"strings"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

// NoSuitableProviderError is returned when every available factory is either
// incapable of serving the request or has already failed. Available lists
// every currently-available backend name, not just the excluded ones, so
// the message describes the real candidate pool.
type NoSuitableProviderError struct {
	Operation imagegen.Operation
	Model     string
	Available []string
}

// Error returns a diagnostic message naming the operation, the model (when
// one was required), and the available backends.
func (e *NoSuitableProviderError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "no suitable provider for operation %q", e.Operation)
	if e.Model != "" {
		fmt.Fprintf(&b, " with model %q", e.Model)
	}
	if len(e.Available) == 0 {
		b.WriteString("; no providers are currently available")
	} else {
		fmt.Fprintf(&b, "; available providers: %s", strings.Join(e.Available, ", "))
	}
	return b.String()
}
