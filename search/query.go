package search

import "github.com/docsift/docsift/textproc"

// Operator is the boolean combination operator applied to query terms.
type Operator string

// OperatorAND is the only supported boolean operator: every term must match.
const OperatorAND Operator = "AND"

// Complexity labels how involved a semantic query is.
type Complexity string

const (
	// ComplexitySimple covers queries of at most two terms.
	ComplexitySimple Complexity = "simple"
	// ComplexityComplex covers queries of three or more terms.
	ComplexityComplex Complexity = "complex"
)

// technicalVocabulary is the fixed term set that flags a query as technical.
var technicalVocabulary = map[string]struct{}{
	"algorithm": {},
	"data":      {},
	"machine":   {},
	"learning":  {},
}

// SemanticFeatures is the small feature bundle the semantic strategy attaches
// to a processed query.
type SemanticFeatures struct {
	TermCount         int
	HasTechnicalTerms bool
	Complexity        Complexity
}

// ProcessedQuery is the normalized form of a raw query plus the
// strategy-specific shaping applied during query processing.
type ProcessedQuery struct {
	Original   string
	Normalized string
	Terms      []string

	// Operator is set by the boolean strategy.
	Operator Operator

	// TermWeights and ScoringMethod are set by the ranked strategy.
	TermWeights   map[string]float64
	ScoringMethod ScoringMethod

	// Features and Threshold are set by the semantic strategy.
	Features  *SemanticFeatures
	Threshold float64
}

// TermCount returns the number of terms in the processed query.
func (pq *ProcessedQuery) TermCount() int {
	return len(pq.Terms)
}

// processTerms normalizes a raw query and extracts its terms, stripping edge
// punctuation from each token. Shared by all three strategies.
func processTerms(raw string) (normalized string, terms []string) {
	normalized = textproc.Normalize(raw)
	for _, token := range textproc.Tokenize(normalized) {
		if term := textproc.StripPunctuation(token); term != "" {
			terms = append(terms, term)
		}
	}
	return normalized, terms
}

// semanticFeaturesOf derives the feature bundle for a term list.
func semanticFeaturesOf(terms []string) *SemanticFeatures {
	features := &SemanticFeatures{
		TermCount:  len(terms),
		Complexity: ComplexitySimple,
	}
	if len(terms) > 2 {
		features.Complexity = ComplexityComplex
	}
	for _, term := range terms {
		if _, ok := technicalVocabulary[term]; ok {
			features.HasTechnicalTerms = true
			break
		}
	}
	return features
}
