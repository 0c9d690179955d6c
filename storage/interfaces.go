package storage

import (
	"context"

	"github.com/docsift/docsift/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// DocumentRepository provides operations for persisting documents.
type DocumentRepository interface {
	Repository

	// PutDocuments stores one or more documents, overwriting any existing
	// document with the same ID.
	PutDocuments(ctx context.Context, docs ...*core.Document) error

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id string) (*core.Document, error)

	// ListDocuments retrieves all stored documents ordered by ID.
	ListDocuments(ctx context.Context) ([]*core.Document, error)

	// DeleteDocuments removes documents by their IDs.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...string) error

	// CountDocuments returns the number of stored documents.
	CountDocuments(ctx context.Context) (int, error)
}

// ProfileRepository provides operations for persisting user profiles.
type ProfileRepository interface {
	Repository

	// PutProfile stores a profile, overwriting any existing profile with the
	// same user ID.
	PutProfile(ctx context.Context, profile *core.UserProfile) error

	// GetProfile retrieves a profile by user ID.
	// Returns ErrNotFound if the profile doesn't exist.
	GetProfile(ctx context.Context, userID string) (*core.UserProfile, error)

	// ListProfiles retrieves all stored profiles ordered by user ID.
	ListProfiles(ctx context.Context) ([]*core.UserProfile, error)
}

// OrderRepository provides append-only persistence for orders.
type OrderRepository interface {
	Repository

	// AppendOrder stores an order under the next sequence number and returns
	// the order with Seq populated. A zero PlacedAt is set to the current
	// time.
	AppendOrder(ctx context.Context, order *core.Order) (*core.Order, error)

	// ListOrders retrieves all orders in sequence order.
	ListOrders(ctx context.Context) ([]*core.Order, error)

	// ListOrdersByUser retrieves a user's orders in sequence order.
	ListOrdersByUser(ctx context.Context, userID string) ([]*core.Order, error)
}
