package mock

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/docsift/docsift/ai"
)

// vectorDim matches the output width of the small local embedding models the
// openai package targets.
const vectorDim = 384

// Embedder is a test double for ai.Embedder. Behavior can be overridden per
// method via function fields; otherwise every text maps to a deterministic
// unit vector derived from its hash, so tests never need a live embedding
// service.
type Embedder struct {
	// EmbedTextFunc is called by EmbedText if set.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc is called by EmbedTexts if set.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	callCount int
}

var _ ai.Embedder = (*Embedder)(nil)

// NewEmbedder creates a mock embedder with default deterministic behavior.
func NewEmbedder() *Embedder {
	return &Embedder{}
}

func (m *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return deterministicVector(text), nil
}

func (m *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount++

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = deterministicVector(text)
	}
	return vectors, nil
}

// CallCount returns the number of times any method was called.
func (m *Embedder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *Embedder) Reset() {
	m.callCount = 0
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}

// deterministicVector expands an FNV hash of the text into a unit vector.
// Identical texts always yield identical vectors.
func deterministicVector(text string) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	state := h.Sum64()

	vector := make([]float32, vectorDim)
	var sumSquares float64
	for i := range vector {
		state = state*6364136223846793005 + 1442695040888963407
		v := float32(state%1000) / 1000.0
		vector[i] = v
		sumSquares += float64(v) * float64(v)
	}

	if norm := math.Sqrt(sumSquares); norm > 0 {
		for i := range vector {
			vector[i] /= float32(norm)
		}
	}
	return vector
}
