package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/ai/mock"
)

func TestNewEngine(t *testing.T) {
	t.Run("builds each supported kind", func(t *testing.T) {
		for _, kind := range SupportedKinds() {
			engine, err := NewEngine(kind, "", string(kind)+"-engine")
			require.NoError(t, err, "kind %s", kind)
			assert.Equal(t, string(kind), engine.StrategyName())
			assert.NotEmpty(t, engine.ID())
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := NewEngine("fuzzy", "", "bad")
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewEngine(KindBoolean, "id-1", "")
		assert.ErrorIs(t, err, ErrEmptyEngineName)
	})

	t.Run("explicit id is preserved", func(t *testing.T) {
		engine, err := NewEngine(KindBoolean, "engine-42", "named")
		require.NoError(t, err)
		assert.Equal(t, "engine-42", engine.ID())
	})

	t.Run("generated ids are unique", func(t *testing.T) {
		a, err := NewEngine(KindBoolean, "", "a")
		require.NoError(t, err)
		b, err := NewEngine(KindBoolean, "", "b")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID(), b.ID())
	})
}

func TestNewEngine_Configuration(t *testing.T) {
	t.Run("invalid scoring method fails fast", func(t *testing.T) {
		_, err := NewEngine(KindRanked, "", "ranked", WithScoringMethod("pagerank"))
		assert.ErrorIs(t, err, ErrInvalidScoringMethod)
	})

	t.Run("invalid threshold fails fast", func(t *testing.T) {
		_, err := NewEngine(KindSemantic, "", "semantic", WithSimilarityThreshold(1.5))
		assert.ErrorIs(t, err, ErrInvalidThreshold)
	})

	t.Run("semantic options apply", func(t *testing.T) {
		engine, err := NewEngine(KindSemantic, "", "semantic",
			WithSimilarityThreshold(0.25),
			WithEmbedderModel(mock.NewEmbedder()))
		require.NoError(t, err)

		sem, ok := engine.strategy.(*SemanticStrategy)
		require.True(t, ok)
		assert.Equal(t, 0.25, sem.Threshold())
		assert.NotNil(t, sem.embedder)
	})

	t.Run("ranked options are ignored by other kinds", func(t *testing.T) {
		_, err := NewEngine(KindBoolean, "", "boolean", WithScoringMethod("pagerank"))
		assert.NoError(t, err)
	})
}
