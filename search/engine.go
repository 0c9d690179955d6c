// Copyright 2026 Docsift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/index"
)

// Metadata describes the context a response was produced in.
type Metadata struct {
	EngineID      string          `json:"engine_id"`
	EngineName    string          `json:"engine_name"`
	StrategyName  string          `json:"strategy"`
	OriginalQuery string          `json:"original_query"`
	Processed     *ProcessedQuery `json:"processed_query"`
	DocumentCount int             `json:"document_count"`
	ResultCount   int             `json:"result_count"`
}

// Response is the complete outcome of one search.
type Response struct {
	Results      []core.ScoredResult `json:"results"`
	Metadata     Metadata            `json:"metadata"`
	TotalResults int                 `json:"total_results"`
}

// SearchRecord is one entry in an engine's append-only search history.
type SearchRecord struct {
	Query       string
	Processed   *ProcessedQuery
	ResultCount int
	Position    int
}

// Engine binds a strategy to a document collection and tracks search history.
// The inverted index is built lazily on first use and rebuilt only after the
// collection changes; a generation counter decides staleness, so re-adding
// and searching interleave correctly even when the collection ends up with
// the same length it had before.
type Engine struct {
	id       string
	name     string
	strategy Strategy
	logger   *slog.Logger
	monitor  Monitor

	mu          sync.RWMutex
	docs        []core.Document
	generation  uint64
	indexGen    uint64
	cachedIndex *index.Index
	history     []SearchRecord
}

// ID returns the engine's identifier.
func (e *Engine) ID() string { return e.id }

// Name returns the engine's display name.
func (e *Engine) Name() string { return e.name }

// StrategyName returns the name of the bound strategy.
func (e *Engine) StrategyName() string { return e.strategy.Name() }

// AddDocument validates and appends a document to the collection,
// invalidating the cached index.
func (e *Engine) AddDocument(doc core.Document) error {
	if err := core.ValidateDocument(&doc); err != nil {
		return err
	}

	e.mu.Lock()
	e.docs = append(e.docs, doc)
	e.generation++
	e.mu.Unlock()

	e.logger.Debug("document added",
		"engine", e.name,
		"doc_id", doc.ID,
		"count", e.DocumentCount())
	return nil
}

// AddDocuments appends a batch of documents. The batch is all-or-nothing:
// validation runs over every document before any is added.
func (e *Engine) AddDocuments(docs []core.Document) error {
	for i := range docs {
		if err := core.ValidateDocument(&docs[i]); err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
	}

	e.mu.Lock()
	e.docs = append(e.docs, docs...)
	e.generation++
	e.mu.Unlock()
	return nil
}

// DocumentCount returns the number of documents in the collection.
func (e *Engine) DocumentCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.docs)
}

// Documents returns a copy of the collection.
func (e *Engine) Documents() []core.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]core.Document, len(e.docs))
	copy(out, e.docs)
	return out
}

// Search validates the engine state, processes the query through the bound
// strategy, executes it, and records the search in history. History is
// append-only; it survives ClearHistory only by being reset to empty, never
// rewritten in place.
func (e *Engine) Search(query string) (*Response, error) {
	e.monitor.Start(query)

	e.mu.RLock()
	docCount := len(e.docs)
	e.mu.RUnlock()

	if err := e.strategy.Validate(docCount); err != nil {
		return nil, fmt.Errorf("engine %q: %w", e.name, err)
	}

	pq := e.strategy.ProcessQuery(query)
	e.monitor.QueryProcessed(pq)

	results, err := e.strategy.Execute(pq, e.collection())
	if err != nil {
		return nil, fmt.Errorf("engine %q: executing %s search: %w", e.name, e.strategy.Name(), err)
	}
	e.monitor.ResultsReady(results)

	resp := &Response{
		Results: results,
		Metadata: Metadata{
			EngineID:      e.id,
			EngineName:    e.name,
			StrategyName:  e.strategy.Name(),
			OriginalQuery: query,
			Processed:     pq,
			DocumentCount: docCount,
			ResultCount:   len(results),
		},
		TotalResults: len(results),
	}

	e.mu.Lock()
	e.history = append(e.history, SearchRecord{
		Query:       query,
		Processed:   pq,
		ResultCount: len(results),
		Position:    len(e.history),
	})
	e.mu.Unlock()

	e.logger.Info("search executed",
		"engine", e.name,
		"strategy", e.strategy.Name(),
		"query", query,
		"results", len(results))

	e.monitor.Finish(resp)
	return resp, nil
}

// SearchPage runs a search and feeds the matched documents through the
// result pipeline: coarse substring re-scoring, minimum-score filtering,
// sorting and pagination.
func (e *Engine) SearchPage(query string, opts PageOptions) (*Page, error) {
	resp, err := e.Search(query)
	if err != nil {
		return nil, err
	}

	docs := make([]core.Document, 0, len(resp.Results))
	for _, r := range resp.Results {
		docs = append(docs, r.Document)
	}
	return FilterSortPaginate(docs, resp.Metadata.Processed.Terms, opts)
}

// collection snapshots the documents and hands the strategy a lazy index
// accessor. The index is memoized per generation under the engine lock.
func (e *Engine) collection() Collection {
	e.mu.RLock()
	docs := e.docs
	e.mu.RUnlock()

	return Collection{
		Docs: docs,
		Index: func() *index.Index {
			e.mu.Lock()
			defer e.mu.Unlock()
			if e.cachedIndex == nil || e.indexGen != e.generation {
				texts := make([]string, len(e.docs))
				for i := range e.docs {
					texts[i] = e.docs[i].SearchableText()
				}
				e.cachedIndex = index.Build(texts)
				e.indexGen = e.generation
				e.logger.Debug("index rebuilt",
					"engine", e.name,
					"generation", e.generation,
					"terms", e.cachedIndex.Stats().TermCount)
			}
			return e.cachedIndex
		},
	}
}

// History returns a copy of the search history in execution order.
func (e *Engine) History() []SearchRecord {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]SearchRecord, len(e.history))
	copy(out, e.history)
	return out
}

// SearchCount returns the number of searches executed so far.
func (e *Engine) SearchCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.history)
}

// ClearHistory discards the search history.
func (e *Engine) ClearHistory() {
	e.mu.Lock()
	e.history = nil
	e.mu.Unlock()
}

// IndexStats builds the index if needed and returns its statistics.
func (e *Engine) IndexStats() index.Stats {
	return e.collection().Index().Stats()
}
