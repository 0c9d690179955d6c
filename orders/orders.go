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

// Package orders parses and formats food orders placed against a fixed menu.
package orders

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrItemNotOnMenu indicates an ordered item missing from the menu.
	ErrItemNotOnMenu = errors.New("food item is not on the menu")

	// ErrEmptyOrder indicates an order with no items.
	ErrEmptyOrder = errors.New("order has no items")

	// ErrTooFewOrders indicates a batch below the three-entry minimum.
	ErrTooFewOrders = errors.New("batch needs at least three orders")

	// ErrMalformedOrder indicates a batch entry that is not "name, item, quantity".
	ErrMalformedOrder = errors.New("malformed order entry")

	// ErrInvalidQuantity indicates a quantity outside 1 through 5.
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 5")
)

// ParseOrder splits a comma-separated order and checks every item against
// the menu. Matching is case-insensitive; the returned items carry the
// menu's casing, in the order the customer listed them.
func ParseOrder(menu []string, orderText string) ([]string, error) {
	onMenu := make(map[string]string, len(menu))
	for _, item := range menu {
		onMenu[strings.ToLower(strings.TrimSpace(item))] = item
	}

	var items []string
	for _, part := range strings.Split(orderText, ",") {
		cleaned := strings.TrimSpace(part)
		if cleaned == "" {
			continue
		}
		canonical, ok := onMenu[strings.ToLower(cleaned)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrItemNotOnMenu, cleaned)
		}
		items = append(items, canonical)
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	return items, nil
}

// BatchEntry is one parsed line of a multi-person order batch.
type BatchEntry struct {
	Name     string
	Item     string
	Quantity int
}

// ParseBatchEntry parses a "name, item, quantity" string.
func ParseBatchEntry(raw string) (BatchEntry, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return BatchEntry{}, fmt.Errorf("%w: %q", ErrMalformedOrder, raw)
	}

	entry := BatchEntry{
		Name: strings.TrimSpace(parts[0]),
		Item: strings.TrimSpace(parts[1]),
	}
	if entry.Name == "" || entry.Item == "" {
		return BatchEntry{}, fmt.Errorf("%w: %q", ErrMalformedOrder, raw)
	}

	qty, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return BatchEntry{}, fmt.Errorf("%w: %q", ErrMalformedOrder, raw)
	}
	if qty < 1 || qty > 5 {
		return BatchEntry{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	entry.Quantity = qty
	return entry, nil
}

// FormatBatch renders a multi-person order batch, one "Name: N item" line
// per entry, pluralizing the item when the quantity exceeds one. A batch
// needs at least three entries.
func FormatBatch(entries []string) (string, error) {
	if len(entries) < 3 {
		return "", ErrTooFewOrders
	}

	lines := make([]string, 0, len(entries))
	for _, raw := range entries {
		entry, err := ParseBatchEntry(raw)
		if err != nil {
			return "", err
		}
		item := entry.Item
		if entry.Quantity > 1 {
			item += "s"
		}
		lines = append(lines, fmt.Sprintf("%s: %d %s", entry.Name, entry.Quantity, item))
	}
	return strings.Join(lines, "\n"), nil
}
