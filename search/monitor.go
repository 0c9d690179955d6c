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

import "github.com/docsift/docsift/core"

// Monitor observes the lifecycle of a single search. Implementations must be
// safe for concurrent use if the engine is shared across goroutines.
type Monitor interface {
	// Start is called before query processing begins.
	Start(query string)

	// QueryProcessed is called after the strategy has shaped the query.
	QueryProcessed(pq *ProcessedQuery)

	// ResultsReady is called with the raw strategy results before metadata
	// wrapping.
	ResultsReady(results []core.ScoredResult)

	// Finish is called with the final response.
	Finish(resp *Response)
}

// noopMonitor is the default Monitor; it ignores every event.
type noopMonitor struct{}

func (noopMonitor) Start(string)                     {}
func (noopMonitor) QueryProcessed(*ProcessedQuery)   {}
func (noopMonitor) ResultsReady([]core.ScoredResult) {}
func (noopMonitor) Finish(*Response)                 {}

var _ Monitor = noopMonitor{}
