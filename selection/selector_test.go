package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

func TestScore(t *testing.T) {
	selCtx := func() *imagegen.SelectionContext {
		return &imagegen.SelectionContext{Operation: imagegen.OperationGenerate}
	}

	t.Run("unsupported operation scores zero", func(t *testing.T) {
		f := &fakeFactory{
			name:     "gen-only",
			priority: 100,
			ops:      []imagegen.Operation{imagegen.OperationGenerate},
		}
		ctx := selCtx()
		ctx.Operation = imagegen.OperationEdit
		assert.Zero(t, Score(f, ctx))
	})

	t.Run("eligible backend earns base score plus priority", func(t *testing.T) {
		f := generateFactory("alpha", 7)
		assert.Equal(t, 107, Score(f, selCtx()))
	})

	t.Run("preferred provider match is case-insensitive and dominant", func(t *testing.T) {
		f := generateFactory("OpenAI", 0)
		ctx := selCtx()
		ctx.PreferredProvider = "openai"
		assert.Equal(t, 1100, Score(f, ctx))
	})

	t.Run("listed model outranks custom model acceptance", func(t *testing.T) {
		listed := generateFactory("listed", 0, "painter-1")
		custom := generateFactory("custom", 0)

		ctx := selCtx()
		ctx.Model = "Painter-1"

		assert.Equal(t, 150, Score(listed, ctx))
		assert.Equal(t, 125, Score(custom, ctx))
	})

	t.Run("required model with no way to serve it scores zero", func(t *testing.T) {
		f := &fakeFactory{
			name:   "strict",
			ops:    allOperations,
			models: []string{"sketcher-2"},
		}
		ctx := selCtx()
		ctx.Model = "painter-1"
		assert.Zero(t, Score(f, ctx))
	})
}

func TestSelectorSelectProvider(t *testing.T) {
	ctx := context.Background()
	env := imagegen.MapEnvironment{}

	t.Run("higher priority wins among equals", func(t *testing.T) {
		low := generateFactory("low", 100)
		high := generateFactory("high", 200)
		selector := NewSelector(NewRegistry(low, high))

		provider, err := selector.SelectProvider(ctx, &imagegen.SelectionContext{
			Operation: imagegen.OperationGenerate,
		}, env)
		require.NoError(t, err)
		assert.Equal(t, "high", provider.Name())
	})

	t.Run("preferred provider beats higher priority", func(t *testing.T) {
		preferred := generateFactory("preferred", 10)
		other := generateFactory("other", 500)
		selector := NewSelector(NewRegistry(preferred, other))

		provider, err := selector.SelectProvider(ctx, &imagegen.SelectionContext{
			Operation:         imagegen.OperationGenerate,
			PreferredProvider: "Preferred",
		}, env)
		require.NoError(t, err)
		assert.Equal(t, "preferred", provider.Name())
	})

	t.Run("failed providers are excluded case-insensitively", func(t *testing.T) {
		top := generateFactory("Top", 200)
		next := generateFactory("next", 100)
		selector := NewSelector(NewRegistry(top, next))

		selCtx := &imagegen.SelectionContext{Operation: imagegen.OperationGenerate}
		selCtx.MarkFailed("TOP")

		provider, err := selector.SelectProvider(ctx, selCtx, env)
		require.NoError(t, err)
		assert.Equal(t, "next", provider.Name())
		assert.Zero(t, top.createCalls)
	})

	t.Run("custom-model backend is the only candidate for an unlisted model", func(t *testing.T) {
		strict := &fakeFactory{
			name:     "strict",
			priority: 500,
			ops:      allOperations,
			models:   []string{"sketcher-2"},
		}
		flexible := generateFactory("flexible", 10)
		selector := NewSelector(NewRegistry(strict, flexible))

		selCtx := &imagegen.SelectionContext{
			Operation: imagegen.OperationGenerate,
			Model:     "painter-1",
		}
		candidates := selector.RankCandidates(ctx, selCtx, env)
		require.Len(t, candidates, 1)
		assert.Equal(t, "flexible", candidates[0].Provider.Name())

		provider, err := selector.SelectProvider(ctx, selCtx, env)
		require.NoError(t, err)
		assert.Equal(t, "flexible", provider.Name())
	})

	t.Run("falls through to the next candidate when instantiation fails", func(t *testing.T) {
		broken := generateFactory("broken", 200)
		broken.createFailures = -1
		working := generateFactory("working", 100)
		selector := NewSelector(NewRegistry(broken, working))

		provider, err := selector.SelectProvider(ctx, &imagegen.SelectionContext{
			Operation: imagegen.OperationGenerate,
		}, env)
		require.NoError(t, err)
		assert.Equal(t, "working", provider.Name())
		assert.Equal(t, 1, broken.createCalls)
	})

	t.Run("lower-ranked candidates are never instantiated", func(t *testing.T) {
		winner := generateFactory("winner", 200)
		loser := generateFactory("loser", 100)
		selector := NewSelector(NewRegistry(winner, loser))

		_, err := selector.SelectProvider(ctx, &imagegen.SelectionContext{
			Operation: imagegen.OperationGenerate,
		}, env)
		require.NoError(t, err)
		assert.Zero(t, loser.createCalls)
	})

	t.Run("registration order breaks exact ties", func(t *testing.T) {
		first := generateFactory("first", 100)
		second := generateFactory("second", 100)
		selector := NewSelector(NewRegistry(first, second))

		provider, err := selector.SelectProvider(ctx, &imagegen.SelectionContext{
			Operation: imagegen.OperationGenerate,
		}, env)
		require.NoError(t, err)
		assert.Equal(t, "first", provider.Name())
	})

	t.Run("error enumerates every available backend", func(t *testing.T) {
		alpha := generateFactory("alpha", 100)
		beta := generateFactory("beta", 90)
		selector := NewSelector(NewRegistry(alpha, beta))

		selCtx := &imagegen.SelectionContext{Operation: imagegen.OperationGenerate}
		selCtx.MarkFailed("alpha")
		selCtx.MarkFailed("beta")

		_, err := selector.SelectProvider(ctx, selCtx, env)
		require.Error(t, err)

		var noProvider *NoSuitableProviderError
		require.True(t, errors.As(err, &noProvider))
		assert.Equal(t, []string{"alpha", "beta"}, noProvider.Available)
		assert.Contains(t, err.Error(), "alpha, beta")
	})

	t.Run("error with empty pool says so", func(t *testing.T) {
		gated := generateFactory("gated", 100)
		gated.requires = "GATED_API_KEY"
		selector := NewSelector(NewRegistry(gated))

		_, err := selector.SelectProvider(ctx, &imagegen.SelectionContext{
			Operation: imagegen.OperationGenerate,
		}, env)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no providers are currently available")
	})
}

func TestSelectorTopCandidateName(t *testing.T) {
	ctx := &imagegen.SelectionContext{Operation: imagegen.OperationGenerate}
	env := imagegen.MapEnvironment{}

	t.Run("names the best factory without instantiating it", func(t *testing.T) {
		top := generateFactory("top", 200)
		selector := NewSelector(NewRegistry(top, generateFactory("next", 100)))

		name, ok := selector.TopCandidateName(ctx, env)
		require.True(t, ok)
		assert.Equal(t, "top", name)
		assert.Zero(t, top.createCalls)
	})

	t.Run("reports absence of candidates", func(t *testing.T) {
		selector := NewSelector(NewRegistry())
		_, ok := selector.TopCandidateName(ctx, env)
		assert.False(t, ok)
	})
}

func TestSelectorRankCandidates(t *testing.T) {
	t.Run("instantiates survivors in rank order and drops failures", func(t *testing.T) {
		top := generateFactory("top", 300)
		broken := generateFactory("broken", 200)
		broken.createFailures = -1
		last := generateFactory("last", 100)
		selector := NewSelector(NewRegistry(last, broken, top))

		candidates := selector.RankCandidates(context.Background(), &imagegen.SelectionContext{
			Operation: imagegen.OperationGenerate,
		}, imagegen.MapEnvironment{})

		require.Len(t, candidates, 2)
		assert.Equal(t, "top", candidates[0].Provider.Name())
		assert.Equal(t, "last", candidates[1].Provider.Name())
		assert.Greater(t, candidates[0].Score, candidates[1].Score)
	})
}
