package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/storage"
)

// OrderRepository implements storage.OrderRepository for BadgerDB. Orders
// are append-only: sequence numbers come from a BadgerDB sequence and keys
// sort in append order.
type OrderRepository struct {
	backend *Backend
	seq     *badger.Sequence
}

var _ storage.OrderRepository = (*OrderRepository)(nil)

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(backend *Backend) (*OrderRepository, error) {
	seq, err := backend.GetSequence(orderSeq)
	if err != nil {
		return nil, err
	}
	return &OrderRepository{backend: backend, seq: seq}, nil
}

// Close releases the order sequence.
func (r *OrderRepository) Close() error {
	return r.seq.Release()
}

// WithTransaction delegates to the backend.
func (r *OrderRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AppendOrder stores an order under the next sequence number.
func (r *OrderRepository) AppendOrder(ctx context.Context, order *core.Order) (*core.Order, error) {
	if err := core.ValidateOrder(order); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		next, err := r.seq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if next == 0 {
			next, err = r.seq.Next()
			if err != nil {
				return err
			}
		}
		order.Seq = next

		if order.PlacedAt.IsZero() {
			order.PlacedAt = time.Now().UTC()
		}

		key := makeOrderKey(order.Seq)
		if err := tx.Set(key, storage.MarshalOrder(order)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders retrieves all orders in sequence order.
func (r *OrderRepository) ListOrders(ctx context.Context) ([]*core.Order, error) {
	return r.listOrders(func(*core.Order) bool { return true })
}

// ListOrdersByUser retrieves a user's orders in sequence order.
func (r *OrderRepository) ListOrdersByUser(ctx context.Context, userID string) ([]*core.Order, error) {
	return r.listOrders(func(order *core.Order) bool { return order.UserID == userID })
}

func (r *OrderRepository) listOrders(keep func(*core.Order) bool) ([]*core.Order, error) {
	var results []*core.Order
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(orderPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var order *core.Order
			err := iter.Item().Value(func(val []byte) error {
				var err error
				order, err = storage.UnmarshalOrder(val)
				return err
			})
			if err != nil {
				return err
			}
			if order != nil && keep(order) {
				results = append(results, order)
			}
		}
		return nil
	}, false)
	return results, err
}
