package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/core"
)

func TestOrderRepository(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	t.Run("append assigns increasing sequence numbers", func(t *testing.T) {
		first, err := repos.Orders.AppendOrder(ctx, &core.Order{UserID: "u1", Items: []string{"espresso"}})
		require.NoError(t, err)
		second, err := repos.Orders.AppendOrder(ctx, &core.Order{UserID: "u2", Items: []string{"bagel"}})
		require.NoError(t, err)

		assert.NotZero(t, first.Seq)
		assert.Greater(t, second.Seq, first.Seq)
		assert.False(t, first.PlacedAt.IsZero())
	})

	t.Run("list in append order", func(t *testing.T) {
		_, err := repos.Orders.AppendOrder(ctx, &core.Order{UserID: "u1", Items: []string{"scone"}})
		require.NoError(t, err)

		orders, err := repos.Orders.ListOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		for i := 1; i < len(orders); i++ {
			assert.Greater(t, orders[i].Seq, orders[i-1].Seq)
		}
	})

	t.Run("list by user", func(t *testing.T) {
		orders, err := repos.Orders.ListOrdersByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, []string{"espresso"}, orders[0].Items)
		assert.Equal(t, []string{"scone"}, orders[1].Items)
	})

	t.Run("invalid order rejected", func(t *testing.T) {
		_, err := repos.Orders.AppendOrder(ctx, &core.Order{UserID: "u1"})
		assert.ErrorIs(t, err, core.ErrInvalidOrder)
	})
}
