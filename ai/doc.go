// Package ai defines the embedding seam for semantic search.
//
// The mock subpackage provides a deterministic test double; the openai
// subpackage provides a production implementation backed by any
// OpenAI-compatible embedding API.
package ai
