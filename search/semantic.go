package search

import (
	"log/slog"

	"github.com/docsift/docsift/ai"
	"github.com/docsift/docsift/core"
)

// DefaultSimilarityThreshold is the minimum score a document needs to survive
// semantic filtering when no explicit threshold is configured.
const DefaultSimilarityThreshold = 0.1

// SemanticStrategy is the meaning-oriented variant of the search contract.
// Without an embedding model it deliberately degrades to the ranked
// strategy's term-frequency scoring, then drops results under the similarity
// threshold. The fallback is intentional, not an error condition.
type SemanticStrategy struct {
	threshold float64
	embedder  ai.Embedder
	logger    *slog.Logger
}

// SemanticOption configures a SemanticStrategy.
type SemanticOption func(*SemanticStrategy) error

// WithThreshold sets the similarity threshold, valid range [0.0, 1.0].
func WithThreshold(threshold float64) SemanticOption {
	return func(s *SemanticStrategy) error {
		return s.SetThreshold(threshold)
	}
}

// WithEmbedder attaches an embedding model. The current implementation still
// falls back to term-frequency scoring; the option exists so callers can wire
// a model without an API change once real similarity search lands.
func WithEmbedder(embedder ai.Embedder) SemanticOption {
	return func(s *SemanticStrategy) error {
		s.embedder = embedder
		return nil
	}
}

// WithSemanticLogger sets a custom logger. Default is slog.Default().
func WithSemanticLogger(logger *slog.Logger) SemanticOption {
	return func(s *SemanticStrategy) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSemanticStrategy creates a semantic strategy with the default threshold
// and applies the provided options.
func NewSemanticStrategy(opts ...SemanticOption) (*SemanticStrategy, error) {
	s := &SemanticStrategy{
		threshold: DefaultSimilarityThreshold,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Threshold returns the configured similarity threshold.
func (s *SemanticStrategy) Threshold() float64 { return s.threshold }

// SetThreshold updates the similarity threshold. An out-of-range value is
// rejected and the stored threshold is left unchanged.
func (s *SemanticStrategy) SetThreshold(threshold float64) error {
	if threshold < 0.0 || threshold > 1.0 {
		return ErrInvalidThreshold
	}
	s.threshold = threshold
	return nil
}

// Name returns the strategy selector.
func (s *SemanticStrategy) Name() string { return "semantic" }

// ProcessQuery normalizes the query and attaches the semantic feature bundle.
func (s *SemanticStrategy) ProcessQuery(raw string) *ProcessedQuery {
	normalized, terms := processTerms(raw)
	return &ProcessedQuery{
		Original:   raw,
		Normalized: normalized,
		Terms:      terms,
		Features:   semanticFeaturesOf(terms),
		Threshold:  s.threshold,
	}
}

// Execute scores documents with the ranked strategy's term-frequency
// algorithm and keeps only results at or above the similarity threshold.
// When an embedder is configured the fallback still applies; it is logged
// once per search so operators can tell model-backed scoring is not active.
func (s *SemanticStrategy) Execute(pq *ProcessedQuery, col Collection) ([]core.ScoredResult, error) {
	if len(col.Docs) == 0 {
		return []core.ScoredResult{}, nil
	}

	if s.embedder != nil {
		s.logger.Warn("no semantic model implementation available, using term-frequency ranking",
			"query", pq.Normalized)
	}

	ranked := rankDocuments(pq.Terms, col.Docs, 0)
	results := make([]core.ScoredResult, 0, len(ranked))
	for _, sp := range ranked {
		if sp.score < s.threshold {
			continue
		}
		results = append(results, core.ScoredResult{
			Document:  col.Docs[sp.pos],
			Score:     sp.score,
			MatchType: core.MatchSemanticSimilarity,
		})
	}
	return results, nil
}

// Validate requires documents and an in-range threshold. A missing embedding
// model does not invalidate the strategy.
func (s *SemanticStrategy) Validate(docCount int) error {
	if docCount == 0 {
		return ErrNoDocuments
	}
	if s.threshold < 0.0 || s.threshold > 1.0 {
		return ErrInvalidThreshold
	}
	return nil
}
