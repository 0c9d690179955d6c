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

// Package search implements the retrieval engines: three interchangeable
// strategies (boolean AND, term-frequency ranked, semantic with fallback)
// behind a single Strategy interface, an Engine that binds a strategy to a
// document collection with a lazily built inverted index and an append-only
// search history, and a result pipeline for filtering, sorting and
// pagination.
//
// Engines are built through NewEngine, which selects the strategy by Kind
// and fails fast on configuration errors:
//
//	engine, err := search.NewEngine(search.KindRanked, "", "articles",
//		search.WithScoringMethod(search.ScoringTF))
//
// All strategies share the same query normalization (lowercasing, whitespace
// collapsing, edge punctuation stripping), so a query matches the same terms
// regardless of which strategy executes it.
package search
