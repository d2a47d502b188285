package selection

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

// Scoring weights. These are implementation details, not configuration: the
// preference weight must dominate every other signal combined so an explicit
// provider request always wins when that backend is eligible.
const (
	preferredProviderWeight = 1000
	eligibleBaseScore       = 100
	listedModelWeight       = 50
	customModelWeight       = 25
)

// Selector ranks the registry's available factories against a
// SelectionContext and instantiates the best candidates.
//
// Selector holds no request-scoped state and is safe for concurrent use.
type Selector struct {
	registry *Registry
	logger   zerolog.Logger
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithLogger sets the logger used for dropped-candidate diagnostics.
func WithLogger(logger zerolog.Logger) SelectorOption {
	return func(s *Selector) {
		s.logger = logger
	}
}

// NewSelector creates a Selector over registry. Without WithLogger, selection
// diagnostics are discarded.
func NewSelector(registry *Registry, opts ...SelectorOption) *Selector {
	s := &Selector{
		registry: registry,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Candidate is an instantiated provider that survived scoring.
type Candidate struct {
	Provider imagegen.Provider
	Factory  imagegen.Factory
	Score    int
}

type scoredFactory struct {
	factory  imagegen.Factory
	score    int
	priority int
}

// Score computes the selection score for one factory, or 0 when the factory
// is hard-excluded (unsupported operation, or a required model it can neither
// list nor accept as custom).
func Score(f imagegen.Factory, selCtx *imagegen.SelectionContext) int {
	meta := f.Metadata()
	caps := meta.Capabilities

	if !caps.SupportsOperation(selCtx.Operation) {
		return 0
	}

	score := eligibleBaseScore

	if selCtx.PreferredProvider != "" && strings.EqualFold(selCtx.PreferredProvider, meta.Name) {
		score += preferredProviderWeight
	}

	if selCtx.Model != "" {
		switch {
		case caps.SupportsModel(selCtx.Model):
			score += listedModelWeight
		case caps.AcceptsCustomModels:
			score += customModelWeight
		default:
			return 0
		}
	}

	return score + meta.Priority
}

// rankFactories scores every available, non-failed factory and returns the
// survivors ordered best-first. The sort is stable: equal score and priority
// preserve registration order for deterministic results.
func (s *Selector) rankFactories(selCtx *imagegen.SelectionContext, env imagegen.Environment) []scoredFactory {
	available := s.registry.AvailableFactories(env)
	ranked := make([]scoredFactory, 0, len(available))

	for _, f := range available {
		if selCtx.HasFailed(f.Name()) {
			continue
		}
		score := Score(f, selCtx)
		if score <= 0 {
			continue
		}
		ranked = append(ranked, scoredFactory{
			factory:  f,
			score:    score,
			priority: f.Metadata().Priority,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].priority > ranked[j].priority
	})

	return ranked
}

// TopCandidateName returns the name of the current best-scoring factory
// without instantiating it. The second result is false when no factory
// survives scoring.
func (s *Selector) TopCandidateName(selCtx *imagegen.SelectionContext, env imagegen.Environment) (string, bool) {
	ranked := s.rankFactories(selCtx, env)
	if len(ranked) == 0 {
		return "", false
	}
	return ranked[0].factory.Name(), true
}

// RankCandidates scores, orders, and instantiates every surviving factory,
// best first. A factory whose Create fails is logged and dropped; the
// remaining candidates are still returned.
func (s *Selector) RankCandidates(ctx context.Context, selCtx *imagegen.SelectionContext, env imagegen.Environment) []Candidate {
	ranked := s.rankFactories(selCtx, env)
	candidates := make([]Candidate, 0, len(ranked))

	for _, sf := range ranked {
		provider, err := sf.factory.Create(ctx, env)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("provider", sf.factory.Name()).
				Msg("provider instantiation failed; dropping candidate")
			continue
		}
		candidates = append(candidates, Candidate{
			Provider: provider,
			Factory:  sf.factory,
			Score:    sf.score,
		})
	}

	return candidates
}

// SelectProvider returns the best instantiable provider for selCtx. Factories
// are instantiated lazily in rank order; instantiation failures are logged
// and skipped. When every candidate is excluded or fails to build, the error
// enumerates all currently-available backends to aid diagnosis.
func (s *Selector) SelectProvider(ctx context.Context, selCtx *imagegen.SelectionContext, env imagegen.Environment) (imagegen.Provider, error) {
	for _, sf := range s.rankFactories(selCtx, env) {
		provider, err := sf.factory.Create(ctx, env)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("provider", sf.factory.Name()).
				Msg("provider instantiation failed; trying next candidate")
			continue
		}
		s.logger.Debug().
			Str("provider", sf.factory.Name()).
			Int("score", sf.score).
			Str("operation", selCtx.Operation.String()).
			Msg("provider selected")
		return provider, nil
	}

	return nil, &NoSuitableProviderError{
		Operation: selCtx.Operation,
		Model:     selCtx.Model,
		Available: availableNames(s.registry, env),
	}
}

func availableNames(registry *Registry, env imagegen.Environment) []string {
	factories := registry.AvailableFactories(env)
	names := make([]string, 0, len(factories))
	for _, f := range factories {
		names = append(names, f.Name())
	}
	return names
}
