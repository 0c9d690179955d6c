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

import "errors"

var (
	// ErrUnknownStrategy is returned by the factory for an unrecognized
	// strategy kind.
	ErrUnknownStrategy = errors.New("unknown search strategy")

	// ErrEmptyEngineName is returned when an engine is created without a name.
	ErrEmptyEngineName = errors.New("engine name cannot be empty")

	// ErrNoDocuments indicates a search was attempted on an engine that holds
	// no documents.
	ErrNoDocuments = errors.New("engine has no documents")

	// ErrInvalidScoringMethod indicates an unrecognized ranked scoring method.
	ErrInvalidScoringMethod = errors.New("invalid scoring method")

	// ErrInvalidThreshold indicates a similarity threshold outside [0, 1].
	ErrInvalidThreshold = errors.New("similarity threshold must be between 0.0 and 1.0")

	// ErrInvalidPage indicates a page number below 1.
	ErrInvalidPage = errors.New("page must be at least 1")

	// ErrInvalidPerPage indicates a page size below 1.
	ErrInvalidPerPage = errors.New("per-page must be at least 1")

	// ErrInvalidSortKey indicates an unrecognized result sort key.
	ErrInvalidSortKey = errors.New("invalid sort key")
)
