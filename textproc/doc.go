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


// Package textproc provides the text normalization and highlighting
// utilities shared by the indexing and search packages.
//
// All comparison-oriented helpers fold case and strip edge punctuation so
// that "Mining," and "mining" are treated as the same term, while display
// helpers (Truncate, Highlight) preserve the original text.
package textproc
