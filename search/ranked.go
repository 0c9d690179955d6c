package search

import (
	"github.com/docsift/docsift/core"
)

// RankedStrategy scores documents by length-normalized term frequency and
// returns them in descending score order.
type RankedStrategy struct {
	method ScoringMethod
	topK   int // 0 means no truncation
}

// NewRankedStrategy creates a ranked strategy with the given scoring method.
// An unrecognized method is rejected here so misconfiguration surfaces before
// any search executes.
func NewRankedStrategy(method ScoringMethod) (*RankedStrategy, error) {
	if method == "" {
		method = ScoringTF
	}
	if !method.Valid() {
		return nil, ErrInvalidScoringMethod
	}
	return &RankedStrategy{method: method}, nil
}

// SetTopK limits execution to the K highest-scoring documents. Zero disables
// truncation.
func (s *RankedStrategy) SetTopK(k int) {
	if k < 0 {
		k = 0
	}
	s.topK = k
}

// ScoringMethod returns the configured scoring method.
func (s *RankedStrategy) ScoringMethod() ScoringMethod { return s.method }

// Name returns the strategy selector.
func (s *RankedStrategy) Name() string { return "ranked" }

// ProcessQuery normalizes the query and assigns a uniform weight of 1.0 to
// every distinct term.
func (s *RankedStrategy) ProcessQuery(raw string) *ProcessedQuery {
	normalized, terms := processTerms(raw)
	weights := make(map[string]float64, len(terms))
	for _, term := range terms {
		weights[term] = 1.0
	}
	return &ProcessedQuery{
		Original:      raw,
		Normalized:    normalized,
		Terms:         terms,
		TermWeights:   weights,
		ScoringMethod: s.method,
	}
}

// Execute ranks every document in the collection by term-frequency score.
// Scores depend only on document content, never on position; ties between
// equal scores keep the original document order.
func (s *RankedStrategy) Execute(pq *ProcessedQuery, col Collection) ([]core.ScoredResult, error) {
	if len(col.Docs) == 0 {
		return []core.ScoredResult{}, nil
	}

	ranked := rankDocuments(pq.Terms, col.Docs, s.topK)
	results := make([]core.ScoredResult, 0, len(ranked))
	for _, sp := range ranked {
		results = append(results, core.ScoredResult{
			Document:  col.Docs[sp.pos],
			Score:     sp.score,
			MatchType: core.MatchRankedRelevance,
		})
	}
	return results, nil
}

// Validate requires documents and a recognized scoring method. An
// unrecognized method makes the strategy invalid even with documents present.
func (s *RankedStrategy) Validate(docCount int) error {
	if docCount == 0 {
		return ErrNoDocuments
	}
	if !s.method.Valid() {
		return ErrInvalidScoringMethod
	}
	return nil
}
