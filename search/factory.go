package search

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docsift/docsift/ai"
)

// Kind selects which retrieval strategy an engine is built around.
type Kind string

const (
	// KindBoolean is exact AND matching.
	KindBoolean Kind = "boolean"
	// KindRanked is term-frequency relevance ranking.
	KindRanked Kind = "ranked"
	// KindSemantic is meaning-oriented search with threshold filtering.
	KindSemantic Kind = "semantic"
)

// SupportedKinds lists the strategy kinds NewEngine accepts.
func SupportedKinds() []Kind {
	return []Kind{KindBoolean, KindRanked, KindSemantic}
}

// Option configures an engine built by NewEngine. Options that do not apply
// to the requested kind are ignored.
type Option func(*config)

type config struct {
	logger        *slog.Logger
	monitor       Monitor
	scoringMethod ScoringMethod
	topK          int
	threshold     float64
	thresholdSet  bool
	embedder      ai.Embedder
}

// WithLogger sets the engine logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMonitor attaches a search lifecycle observer.
func WithMonitor(m Monitor) Option {
	return func(c *config) {
		if m != nil {
			c.monitor = m
		}
	}
}

// WithScoringMethod sets the ranked strategy's scoring method.
func WithScoringMethod(m ScoringMethod) Option {
	return func(c *config) { c.scoringMethod = m }
}

// WithTopK limits ranked results to the K best. Zero keeps all.
func WithTopK(k int) Option {
	return func(c *config) { c.topK = k }
}

// WithSimilarityThreshold sets the semantic strategy's similarity threshold.
func WithSimilarityThreshold(threshold float64) Option {
	return func(c *config) {
		c.threshold = threshold
		c.thresholdSet = true
	}
}

// WithEmbedderModel attaches an embedding model to the semantic strategy.
func WithEmbedderModel(e ai.Embedder) Option {
	return func(c *config) { c.embedder = e }
}

// NewEngine builds an engine for the given strategy kind. Configuration
// errors surface here, before the engine ever holds documents. An empty id
// gets a generated UUID; an empty name is rejected.
func NewEngine(kind Kind, id, name string, opts ...Option) (*Engine, error) {
	if name == "" {
		return nil, ErrEmptyEngineName
	}
	if id == "" {
		id = uuid.NewString()
	}

	cfg := config{
		logger:        slog.Default(),
		monitor:       noopMonitor{},
		scoringMethod: ScoringTF,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		strategy Strategy
		err      error
	)
	switch kind {
	case KindBoolean:
		strategy = NewBooleanStrategy()
	case KindRanked:
		var rs *RankedStrategy
		rs, err = NewRankedStrategy(cfg.scoringMethod)
		if err == nil {
			rs.SetTopK(cfg.topK)
			strategy = rs
		}
	case KindSemantic:
		semOpts := []SemanticOption{WithSemanticLogger(cfg.logger)}
		if cfg.thresholdSet {
			semOpts = append(semOpts, WithThreshold(cfg.threshold))
		}
		if cfg.embedder != nil {
			semOpts = append(semOpts, WithEmbedder(cfg.embedder))
		}
		strategy, err = NewSemanticStrategy(semOpts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("building %s engine %q: %w", kind, name, err)
	}

	cfg.logger.Debug("engine created",
		"engine", name,
		"id", id,
		"strategy", strategy.Name())

	return &Engine{
		id:       id,
		name:     name,
		strategy: strategy,
		logger:   cfg.logger,
		monitor:  cfg.monitor,
	}, nil
}
