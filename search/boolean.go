package search

import (
	"github.com/docsift/docsift/core"
)

// BooleanStrategy implements exact AND matching over an inverted index.
// Every query term must occur in a document for it to match; matches score
// exactly 1.0.
type BooleanStrategy struct{}

// NewBooleanStrategy creates a boolean AND strategy.
func NewBooleanStrategy() *BooleanStrategy {
	return &BooleanStrategy{}
}

// Name returns the strategy selector.
func (s *BooleanStrategy) Name() string { return "boolean" }

// ProcessQuery normalizes the query and tags it with the AND operator.
func (s *BooleanStrategy) ProcessQuery(raw string) *ProcessedQuery {
	normalized, terms := processTerms(raw)
	return &ProcessedQuery{
		Original:   raw,
		Normalized: normalized,
		Terms:      terms,
		Operator:   OperatorAND,
	}
}

// Execute intersects the posting sets of all query terms, starting from the
// first term's postings. A term missing from the index contributes an empty
// posting set, short-circuiting to an empty intersection. Duplicate query
// terms are harmless: intersecting a set with itself is a no-op.
func (s *BooleanStrategy) Execute(pq *ProcessedQuery, col Collection) ([]core.ScoredResult, error) {
	if len(pq.Terms) == 0 {
		return []core.ScoredResult{}, nil
	}

	ix := col.Index()
	surviving := ix.Lookup(pq.Terms[0])
	for _, term := range pq.Terms[1:] {
		if len(surviving) == 0 {
			break
		}
		surviving = intersectSorted(surviving, ix.Lookup(term))
	}

	results := make([]core.ScoredResult, 0, len(surviving))
	for _, pos := range surviving {
		if pos < 0 || pos >= len(col.Docs) {
			continue
		}
		results = append(results, core.ScoredResult{
			Document:  col.Docs[pos],
			Score:     1.0,
			MatchType: core.MatchBooleanExact,
		})
	}
	return results, nil
}

// Validate reports whether the collection can be searched. An index can
// always be attempted, so only an empty collection disqualifies the strategy.
func (s *BooleanStrategy) Validate(docCount int) error {
	if docCount == 0 {
		return ErrNoDocuments
	}
	return nil
}

// intersectSorted intersects two ascending position slices.
func intersectSorted(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
