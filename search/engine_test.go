package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/core"
)

func newTestEngine(t *testing.T, kind Kind, opts ...Option) *Engine {
	t.Helper()
	engine, err := NewEngine(kind, "", "test-engine", opts...)
	require.NoError(t, err)
	return engine
}

func seedEngine(t *testing.T, engine *Engine, docs []core.Document) {
	t.Helper()
	for _, doc := range docs {
		require.NoError(t, engine.AddDocument(doc))
	}
}

func TestEngine_AddDocument(t *testing.T) {
	engine := newTestEngine(t, KindBoolean)

	t.Run("valid document", func(t *testing.T) {
		err := engine.AddDocument(core.Document{ID: "d1", Title: "T", Text: "body"})
		require.NoError(t, err)
		assert.Equal(t, 1, engine.DocumentCount())
	})

	t.Run("invalid document rejected", func(t *testing.T) {
		err := engine.AddDocument(core.Document{ID: "", Title: "T", Text: "body"})
		assert.ErrorIs(t, err, core.ErrEmptyDocumentID)
		assert.Equal(t, 1, engine.DocumentCount())
	})

	t.Run("batch is all-or-nothing", func(t *testing.T) {
		err := engine.AddDocuments([]core.Document{
			{ID: "d2", Title: "T", Text: "body"},
			{ID: "d3", Title: "", Text: "body"},
		})
		assert.ErrorIs(t, err, core.ErrEmptyTitle)
		assert.Equal(t, 1, engine.DocumentCount())
	})
}

func TestEngine_Search(t *testing.T) {
	t.Run("empty engine rejects searches", func(t *testing.T) {
		engine := newTestEngine(t, KindBoolean)
		_, err := engine.Search("anything")
		assert.ErrorIs(t, err, ErrNoDocuments)
	})

	t.Run("response carries metadata", func(t *testing.T) {
		engine := newTestEngine(t, KindRanked)
		seedEngine(t, engine, rankedFixtureDocs())

		resp, err := engine.Search("data mining")
		require.NoError(t, err)

		assert.Equal(t, engine.ID(), resp.Metadata.EngineID)
		assert.Equal(t, "test-engine", resp.Metadata.EngineName)
		assert.Equal(t, "ranked", resp.Metadata.StrategyName)
		assert.Equal(t, "data mining", resp.Metadata.OriginalQuery)
		assert.Equal(t, []string{"data", "mining"}, resp.Metadata.Processed.Terms)
		assert.Equal(t, 3, resp.Metadata.DocumentCount)
		assert.Equal(t, len(resp.Results), resp.Metadata.ResultCount)
		assert.Equal(t, len(resp.Results), resp.TotalResults)
	})

	t.Run("documents added after a search are found", func(t *testing.T) {
		engine := newTestEngine(t, KindBoolean)
		seedEngine(t, engine, []core.Document{
			{ID: "d1", Title: "First", Text: "alpha beta"},
		})

		resp, err := engine.Search("gamma")
		require.NoError(t, err)
		assert.Empty(t, resp.Results)

		require.NoError(t, engine.AddDocument(core.Document{ID: "d2", Title: "Second", Text: "gamma delta"}))

		resp, err = engine.Search("gamma")
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "d2", resp.Results[0].Document.ID)
	})

	t.Run("repeated searches reuse the index", func(t *testing.T) {
		engine := newTestEngine(t, KindBoolean)
		seedEngine(t, engine, booleanFixtureDocs())

		first, err := engine.Search("machine learning")
		require.NoError(t, err)
		second, err := engine.Search("machine learning")
		require.NoError(t, err)
		assert.Equal(t, first.Results, second.Results)
	})
}

func TestEngine_History(t *testing.T) {
	engine := newTestEngine(t, KindRanked)
	seedEngine(t, engine, rankedFixtureDocs())

	_, err := engine.Search("data")
	require.NoError(t, err)
	_, err = engine.Search("mining techniques")
	require.NoError(t, err)

	history := engine.History()
	require.Len(t, history, 2)
	assert.Equal(t, "data", history[0].Query)
	assert.Equal(t, 0, history[0].Position)
	assert.Equal(t, "mining techniques", history[1].Query)
	assert.Equal(t, 1, history[1].Position)
	assert.Equal(t, 2, engine.SearchCount())

	t.Run("failed searches are not recorded", func(t *testing.T) {
		empty := newTestEngine(t, KindRanked)
		_, err := empty.Search("data")
		require.Error(t, err)
		assert.Zero(t, empty.SearchCount())
	})

	t.Run("clear resets history", func(t *testing.T) {
		engine.ClearHistory()
		assert.Empty(t, engine.History())
		assert.Zero(t, engine.SearchCount())
	})
}

func TestEngine_SearchPage(t *testing.T) {
	engine := newTestEngine(t, KindRanked)
	seedEngine(t, engine, paginationFixtureDocs())

	opts := DefaultPageOptions()
	opts.Page = 2
	opts.PerPage = 3

	page, err := engine.SearchPage("gopher", opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"p4", "p5", "p6"}, pageIDs(page))
	assert.Equal(t, 7, page.TotalResults)
	assert.Equal(t, 3, page.TotalPages)
}

func TestEngine_IndexStats(t *testing.T) {
	engine := newTestEngine(t, KindBoolean)
	seedEngine(t, engine, []core.Document{
		{ID: "d1", Title: "alpha", Text: "beta gamma"},
	})

	stats := engine.IndexStats()
	assert.Equal(t, 3, stats.TermCount)
}

// recordingMonitor captures the search lifecycle events for assertions.
type recordingMonitor struct {
	events []string
}

func (m *recordingMonitor) Start(string)                     { m.events = append(m.events, "start") }
func (m *recordingMonitor) QueryProcessed(*ProcessedQuery)   { m.events = append(m.events, "processed") }
func (m *recordingMonitor) ResultsReady([]core.ScoredResult) { m.events = append(m.events, "results") }
func (m *recordingMonitor) Finish(*Response)                 { m.events = append(m.events, "finish") }

func TestEngine_Monitor(t *testing.T) {
	monitor := &recordingMonitor{}
	engine := newTestEngine(t, KindBoolean, WithMonitor(monitor))
	seedEngine(t, engine, booleanFixtureDocs())

	_, err := engine.Search("machine")
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "processed", "results", "finish"}, monitor.events)
}
