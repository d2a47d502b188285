package selection

import (
	"context"
	"errors"
	"maps"

	"github.com/rs/zerolog"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

// fallbackAttempts is the number of guarded selection attempts before the
// failed-set is restored and a final unguarded attempt is made.
const fallbackAttempts = 3

// FallbackSelector wraps a Selector in a bounded retry loop that excludes the
// previously top-ranked candidate between attempts, forcing progress through
// the ranked list.
type FallbackSelector struct {
	selector *Selector
	logger   zerolog.Logger
}

// FallbackOption configures a FallbackSelector.
type FallbackOption func(*FallbackSelector)

// WithFallbackLogger sets the logger used for retry diagnostics.
func WithFallbackLogger(logger zerolog.Logger) FallbackOption {
	return func(f *FallbackSelector) {
		f.logger = logger
	}
}

// NewFallbackSelector creates a FallbackSelector over selector.
func NewFallbackSelector(selector *Selector, opts ...FallbackOption) *FallbackSelector {
	f := &FallbackSelector{
		selector: selector,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SelectProvider selects a provider with bounded fallback. Each recoverable
// selection failure marks the then-best candidate as failed in selCtx and
// retries, up to fallbackAttempts times. On exhaustion the failed-set is
// restored to its value at call entry (attempts never leak exclusions back
// into the caller's context) and one final unguarded selection runs against
// the original candidate pool; its error, if any, propagates unchanged.
//
// Context cancellation and permanent errors are not recoverable and
// propagate immediately.
func (f *FallbackSelector) SelectProvider(ctx context.Context, selCtx *imagegen.SelectionContext, env imagegen.Environment) (imagegen.Provider, error) {
	entryFailed := maps.Clone(selCtx.FailedProviders)

	for attempt := 0; attempt < fallbackAttempts; attempt++ {
		provider, err := f.selector.SelectProvider(ctx, selCtx, env)
		if err == nil {
			return provider, nil
		}
		if !recoverable(err) {
			return nil, err
		}

		top, ok := f.selector.TopCandidateName(selCtx, env)
		if !ok {
			// Nothing left to exclude; further guarded attempts cannot
			// make progress.
			break
		}
		f.logger.Debug().
			Err(err).
			Str("excluding", top).
			Int("attempt", attempt+1).
			Msg("selection failed; excluding top candidate and retrying")
		selCtx.MarkFailed(top)
	}

	selCtx.FailedProviders = entryFailed
	return f.selector.SelectProvider(ctx, selCtx, env)
}

// recoverable reports whether a selection failure may be fixed by excluding a
// candidate and retrying. Cancellation and permanent credential/config errors
// never are.
func recoverable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if imagegen.IsPermanent(err) || imagegen.IsUserInput(err) {
		return false
	}
	return true
}
