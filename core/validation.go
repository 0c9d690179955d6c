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

import (
	"fmt"
	"strings"
)

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - ID must not be empty or whitespace-only
//   - Title must not be empty or whitespace-only
//   - Text must not be empty or whitespace-only
//
// NOT validated:
//   - Tags (optional)
//   - Date (optional, free-form string)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if strings.TrimSpace(doc.ID) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDocumentID)
	}

	if strings.TrimSpace(doc.Title) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyTitle)
	}

	if strings.TrimSpace(doc.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyText)
	}

	return nil
}

// ValidateProfile validates a UserProfile according to domain rules.
func ValidateProfile(profile *UserProfile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if strings.TrimSpace(profile.UserID) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyUserID)
	}

	if profile.Age < 0 {
		return fmt.Errorf("%w: age must not be negative", ErrInvalidProfile)
	}

	return nil
}

// ValidateOrder validates an Order according to domain rules.
func ValidateOrder(order *Order) error {
	if order == nil {
		return fmt.Errorf("%w: order is nil", ErrInvalidOrder)
	}

	if strings.TrimSpace(order.UserID) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, ErrEmptyUserID)
	}

	if len(order.Items) == 0 {
		return fmt.Errorf("%w: order has no items", ErrInvalidOrder)
	}

	return nil
}
