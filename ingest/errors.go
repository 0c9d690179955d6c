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

package ingest

import "errors"

var (
	// ErrRepositoryRequired indicates the importer was built without a
	// document repository.
	ErrRepositoryRequired = errors.New("document repository is required")

	// ErrUnsupportedFormat indicates a file extension with no reader.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrMissingHeader indicates a CSV file without the required header row.
	ErrMissingHeader = errors.New("missing csv header")
)
