package search

import (
	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/index"
)

// Collection is the document snapshot a strategy executes against. Index is a
// lazy accessor supplied by the engine; it is only invoked by strategies that
// need an inverted index, and the engine memoizes the build per document
// generation.
type Collection struct {
	Docs  []core.Document
	Index func() *index.Index
}

// Strategy is one of the three interchangeable retrieval algorithms. A
// strategy is stateless with respect to documents: the engine owns the
// collection and passes a snapshot to Execute.
type Strategy interface {
	// Name returns the strategy selector ("boolean", "ranked" or "semantic").
	Name() string

	// ProcessQuery normalizes a raw query and applies strategy-specific
	// shaping. An empty query yields a ProcessedQuery with no terms, not an
	// error.
	ProcessQuery(raw string) *ProcessedQuery

	// Execute runs the retrieval algorithm over the collection. Terms absent
	// from the collection contribute empty matches, never errors.
	Execute(pq *ProcessedQuery, col Collection) ([]core.ScoredResult, error)

	// Validate reports whether the strategy can search a collection of the
	// given size. A nil return means the strategy is capable.
	Validate(docCount int) error
}
