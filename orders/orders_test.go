package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	menu := []string{"sushi", "ice cream", "fish", "burger"}

	t.Run("all items on menu", func(t *testing.T) {
		items, err := ParseOrder(menu, "sushi, ice cream")
		require.NoError(t, err)
		assert.Equal(t, []string{"sushi", "ice cream"}, items)
	})

	t.Run("single item", func(t *testing.T) {
		items, err := ParseOrder(menu, "burger")
		require.NoError(t, err)
		assert.Equal(t, []string{"burger"}, items)
	})

	t.Run("case insensitive with menu casing restored", func(t *testing.T) {
		items, err := ParseOrder([]string{"Sushi"}, "sushi")
		require.NoError(t, err)
		assert.Equal(t, []string{"Sushi"}, items)
	})

	t.Run("item off menu", func(t *testing.T) {
		_, err := ParseOrder(menu, "sushi, pizza")
		assert.ErrorIs(t, err, ErrItemNotOnMenu)
	})

	t.Run("empty order", func(t *testing.T) {
		_, err := ParseOrder(menu, " , ")
		assert.ErrorIs(t, err, ErrEmptyOrder)
	})
}

func TestParseBatchEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		entry, err := ParseBatchEntry("Adrian, cheeseburger, 2")
		require.NoError(t, err)
		assert.Equal(t, BatchEntry{Name: "Adrian", Item: "cheeseburger", Quantity: 2}, entry)
	})

	t.Run("quantity bounds", func(t *testing.T) {
		_, err := ParseBatchEntry("Bob, pizza, 0")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		_, err = ParseBatchEntry("Bob, pizza, 6")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("malformed entries", func(t *testing.T) {
		for _, raw := range []string{"Bob, pizza", "Bob, pizza, two", ", pizza, 2", "Bob, , 2"} {
			_, err := ParseBatchEntry(raw)
			assert.ErrorIs(t, err, ErrMalformedOrder, "entry %q", raw)
		}
	})
}

func TestFormatBatch(t *testing.T) {
	t.Run("pluralizes above one", func(t *testing.T) {
		out, err := FormatBatch([]string{
			"Adrian, cheeseburger, 2",
			"Bob, snack wrap, 2",
			"Cory, pizza, 1",
		})
		require.NoError(t, err)
		assert.Equal(t, "Adrian: 2 cheeseburgers\nBob: 2 snack wraps\nCory: 1 pizza", out)
	})

	t.Run("requires three entries", func(t *testing.T) {
		_, err := FormatBatch([]string{"Adrian, cheeseburger, 2"})
		assert.ErrorIs(t, err, ErrTooFewOrders)
	})

	t.Run("propagates entry errors", func(t *testing.T) {
		_, err := FormatBatch([]string{
			"Adrian, cheeseburger, 2",
			"Bob, snack wrap, 9",
			"Cory, pizza, 1",
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}
