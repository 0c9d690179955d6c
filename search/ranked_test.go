package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/core"
)

func TestTermFrequencyScore(t *testing.T) {
	t.Run("hits over token count", func(t *testing.T) {
		score := TermFrequencyScore([]string{"data", "mining"}, "data mining tools")
		assert.InDelta(t, 2.0/3.0, score, 1e-9)
	})

	t.Run("duplicate query terms count once per token", func(t *testing.T) {
		score := TermFrequencyScore([]string{"data", "data"}, "data tools")
		assert.InDelta(t, 0.5, score, 1e-9)
	})

	t.Run("repeated document tokens all count", func(t *testing.T) {
		score := TermFrequencyScore([]string{"data"}, "data data data")
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("whole tokens only", func(t *testing.T) {
		score := TermFrequencyScore([]string{"cat"}, "catalog category")
		assert.Zero(t, score)
	})

	t.Run("punctuation stripped before matching", func(t *testing.T) {
		score := TermFrequencyScore([]string{"data"}, "Data, mining.")
		assert.InDelta(t, 0.5, score, 1e-9)
	})

	t.Run("empty document scores zero", func(t *testing.T) {
		assert.Zero(t, TermFrequencyScore([]string{"data"}, "   "))
	})
}

func rankedFixtureDocs() []core.Document {
	return []core.Document{
		{ID: "a", Title: "Data Mining", Text: "data mining techniques"},
		{ID: "b", Title: "Cooking", Text: "recipes for pasta"},
		{ID: "c", Title: "Data", Text: "data data"},
	}
}

func TestRankedStrategy_ProcessQuery(t *testing.T) {
	s, err := NewRankedStrategy(ScoringTF)
	require.NoError(t, err)

	pq := s.ProcessQuery("Data MINING data")
	assert.Equal(t, []string{"data", "mining", "data"}, pq.Terms)
	assert.Equal(t, ScoringTF, pq.ScoringMethod)
	assert.Equal(t, map[string]float64{"data": 1.0, "mining": 1.0}, pq.TermWeights)
}

func TestRankedStrategy_Execute(t *testing.T) {
	s, err := NewRankedStrategy(ScoringTF)
	require.NoError(t, err)

	t.Run("sorted by score descending", func(t *testing.T) {
		col := testCollection(rankedFixtureDocs())
		results, err := s.Execute(s.ProcessQuery("data mining"), col)
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, "c", results[0].Document.ID)
		assert.InDelta(t, 1.0, results[0].Score, 1e-9)
		assert.Equal(t, "a", results[1].Document.ID)
		assert.InDelta(t, 0.8, results[1].Score, 1e-9)
		assert.Equal(t, "b", results[2].Document.ID)
		assert.Zero(t, results[2].Score)

		for _, r := range results {
			assert.Equal(t, core.MatchRankedRelevance, r.MatchType)
		}
	})

	t.Run("scores do not depend on document order", func(t *testing.T) {
		docs := rankedFixtureDocs()
		reversed := []core.Document{docs[2], docs[1], docs[0]}

		original, err := s.Execute(s.ProcessQuery("data mining"), testCollection(docs))
		require.NoError(t, err)
		shuffled, err := s.Execute(s.ProcessQuery("data mining"), testCollection(reversed))
		require.NoError(t, err)

		byID := func(results []core.ScoredResult) map[string]float64 {
			out := make(map[string]float64, len(results))
			for _, r := range results {
				out[r.Document.ID] = r.Score
			}
			return out
		}
		assert.Equal(t, byID(original), byID(shuffled))
	})

	t.Run("ties keep collection order", func(t *testing.T) {
		docs := []core.Document{
			{ID: "x", Title: "pasta", Text: "pasta"},
			{ID: "y", Title: "pasta", Text: "pasta"},
		}
		results, err := s.Execute(s.ProcessQuery("pasta"), testCollection(docs))
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "x", results[0].Document.ID)
		assert.Equal(t, "y", results[1].Document.ID)
	})

	t.Run("topK truncates", func(t *testing.T) {
		limited, err := NewRankedStrategy(ScoringTF)
		require.NoError(t, err)
		limited.SetTopK(1)

		results, err := limited.Execute(limited.ProcessQuery("data"), testCollection(rankedFixtureDocs()))
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "c", results[0].Document.ID)
	})

	t.Run("empty collection", func(t *testing.T) {
		results, err := s.Execute(s.ProcessQuery("data"), testCollection(nil))
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestRankedStrategy_Validate(t *testing.T) {
	s, err := NewRankedStrategy(ScoringTF)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Validate(0), ErrNoDocuments)
	assert.NoError(t, s.Validate(3))
}

func TestNewRankedStrategy(t *testing.T) {
	t.Run("defaults to tf", func(t *testing.T) {
		s, err := NewRankedStrategy("")
		require.NoError(t, err)
		assert.Equal(t, ScoringTF, s.ScoringMethod())
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		_, err := NewRankedStrategy("pagerank")
		assert.ErrorIs(t, err, ErrInvalidScoringMethod)
	})
}
