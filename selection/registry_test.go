package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

func factoryNames(factories []imagegen.Factory) []string {
	names := make([]string, 0, len(factories))
	for _, f := range factories {
		names = append(names, f.Name())
	}
	return names
}

func TestRegistry(t *testing.T) {
	t.Run("preserves registration order", func(t *testing.T) {
		registry := NewRegistry(
			generateFactory("alpha", 100),
			generateFactory("beta", 200),
			generateFactory("gamma", 50),
		)
		assert.Equal(t, []string{"alpha", "beta", "gamma"}, factoryNames(registry.Factories()))
	})

	t.Run("copies the factory slice at construction", func(t *testing.T) {
		factories := []imagegen.Factory{generateFactory("alpha", 100)}
		registry := NewRegistry(factories...)
		factories[0] = generateFactory("replaced", 0)
		assert.Equal(t, []string{"alpha"}, factoryNames(registry.Factories()))
	})

	t.Run("re-evaluates availability on every call", func(t *testing.T) {
		alpha := generateFactory("alpha", 100)
		alpha.requires = "ALPHA_API_KEY"
		beta := generateFactory("beta", 90)

		registry := NewRegistry(alpha, beta)
		env := imagegen.MapEnvironment{}

		assert.Equal(t, []string{"beta"}, factoryNames(registry.AvailableFactories(env)))

		env["ALPHA_API_KEY"] = "sk-test"
		assert.Equal(t, []string{"alpha", "beta"}, factoryNames(registry.AvailableFactories(env)))

		delete(env, "ALPHA_API_KEY")
		assert.Equal(t, []string{"beta"}, factoryNames(registry.AvailableFactories(env)))
	})

	t.Run("filters by operation", func(t *testing.T) {
		generateOnly := &fakeFactory{
			name:     "gen-only",
			priority: 100,
			ops:      []imagegen.Operation{imagegen.OperationGenerate},
		}
		full := generateFactory("full", 90)

		registry := NewRegistry(generateOnly, full)
		env := imagegen.MapEnvironment{}

		matched := registry.FactoriesForOperation(env, imagegen.OperationEdit)
		require.Len(t, matched, 1)
		assert.Equal(t, "full", matched[0].Name())

		matched = registry.FactoriesForOperation(env, imagegen.OperationGenerate)
		assert.Len(t, matched, 2)
	})

	t.Run("filters by model including custom-model backends", func(t *testing.T) {
		listed := &fakeFactory{
			name:     "listed",
			priority: 100,
			ops:      allOperations,
			models:   []string{"painter-1"},
		}
		custom := &fakeFactory{
			name:     "custom",
			priority: 90,
			ops:      allOperations,
			custom:   true,
		}
		neither := &fakeFactory{
			name:     "neither",
			priority: 80,
			ops:      allOperations,
			models:   []string{"sketcher-2"},
		}

		registry := NewRegistry(listed, custom, neither)
		env := imagegen.MapEnvironment{}

		matched := registry.FactoriesForModel(env, "painter-1")
		assert.Equal(t, []string{"listed", "custom"}, factoryNames(matched))
	})
}
