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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrEmptyDocumentID indicates the document ID field is empty.
	ErrEmptyDocumentID = errors.New("document id cannot be empty")

	// ErrEmptyTitle indicates the document Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyText indicates the document Text field is empty.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrInvalidProfile indicates a UserProfile failed validation.
	ErrInvalidProfile = errors.New("invalid user profile")

	// ErrEmptyUserID indicates the UserID field is empty.
	ErrEmptyUserID = errors.New("user id cannot be empty")

	// ErrInvalidOrder indicates an Order failed validation.
	ErrInvalidOrder = errors.New("invalid order")
)
