package index

import (
	"sort"

	"github.com/docsift/docsift/textproc"
)

// Index is an inverted index mapping a normalized term to the ordered set of
// document positions containing it. Positions are zero-based offsets into the
// document slice the index was built from.
//
// An Index is immutable after Build; callers rebuild when the underlying
// collection changes.
type Index struct {
	postings map[string][]int
	docCount int
}

// Build constructs an inverted index over the given document texts. Each text
// is normalized, tokenized and punctuation-stripped; terms are deduplicated
// within a single document before their position is recorded. Builds are
// deterministic: the same texts in the same order produce the same index.
func Build(texts []string) *Index {
	postings := make(map[string][]int)
	for pos, text := range texts {
		seen := make(map[string]struct{})
		for _, token := range textproc.Tokenize(textproc.Normalize(text)) {
			term := textproc.StripPunctuation(token)
			if term == "" {
				continue
			}
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			postings[term] = append(postings[term], pos)
		}
	}
	return &Index{postings: postings, docCount: len(texts)}
}

// Lookup returns the positions of documents containing term, in ascending
// order. Unknown terms yield an empty slice, never an error. The returned
// slice is owned by the index and must not be mutated.
func (ix *Index) Lookup(term string) []int {
	return ix.postings[term]
}

// Contains reports whether term occurs in any indexed document.
func (ix *Index) Contains(term string) bool {
	return len(ix.postings[term]) > 0
}

// DocCount returns the number of documents the index was built from.
func (ix *Index) DocCount() int {
	return ix.docCount
}

// Stats summarizes the shape of the index.
type Stats struct {
	TermCount     int
	TotalPostings int
	AvgPostings   float64
}

// Stats computes term and posting counts for reporting.
func (ix *Index) Stats() Stats {
	total := 0
	for _, positions := range ix.postings {
		total += len(positions)
	}
	s := Stats{TermCount: len(ix.postings), TotalPostings: total}
	if s.TermCount > 0 {
		s.AvgPostings = float64(total) / float64(s.TermCount)
	}
	return s
}

// Terms returns all indexed terms in lexicographic order.
func (ix *Index) Terms() []string {
	terms := make([]string, 0, len(ix.postings))
	for term := range ix.postings {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
