package search

import (
	"sort"

	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/textproc"
)

// ScoringMethod selects how the ranked strategy scores documents.
type ScoringMethod string

const (
	// ScoringTF scores by plain term frequency.
	ScoringTF ScoringMethod = "tf"
	// ScoringCombined is reserved for combined scoring; it currently behaves
	// like ScoringTF.
	ScoringCombined ScoringMethod = "combined"
)

// Valid reports whether the method is one of the recognized scoring methods.
func (m ScoringMethod) Valid() bool {
	return m == ScoringTF || m == ScoringCombined
}

// TermFrequencyScore computes the length-normalized term-frequency score of a
// document text against a set of query terms: the total number of token
// occurrences of the distinct query terms, divided by the document's token
// count. Duplicate query terms do not double-count. A document with no tokens
// scores 0.
func TermFrequencyScore(terms []string, text string) float64 {
	tokens := textproc.Tokenize(textproc.Normalize(text))
	if len(tokens) == 0 {
		return 0
	}

	distinct := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		distinct[term] = struct{}{}
	}

	hits := 0
	for _, token := range tokens {
		if _, ok := distinct[textproc.StripPunctuation(token)]; ok {
			hits++
		}
	}

	return float64(hits) / float64(len(tokens))
}

// scoredPosition pairs a document position with its score during ranking.
type scoredPosition struct {
	pos   int
	score float64
}

// rankDocuments scores every document against the query terms and sorts the
// result by score descending. Ties keep the original document order. A topK
// of 0 returns all documents.
func rankDocuments(terms []string, docs []core.Document, topK int) []scoredPosition {
	ranked := make([]scoredPosition, len(docs))
	for i := range docs {
		ranked[i] = scoredPosition{
			pos:   i,
			score: TermFrequencyScore(terms, docs[i].SearchableText()),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}
