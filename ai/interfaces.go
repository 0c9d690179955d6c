package ai

import "context"

// Embedder generates vector embeddings from text.
// Implementations must be thread-safe for concurrent use.
//
// The semantic search strategy accepts an Embedder but currently always falls
// back to term-frequency ranking; the interface exists so a real model can be
// wired in without changing callers.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch. The returned slice matches the order of the input texts.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}
