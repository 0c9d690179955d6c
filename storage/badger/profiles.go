package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/storage"
)

// ProfileRepository implements storage.ProfileRepository for BadgerDB.
type ProfileRepository struct {
	backend *Backend
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(backend *Backend) (*ProfileRepository, error) {
	return &ProfileRepository{backend: backend}, nil
}

// Close releases repository resources. The backend is shared and closed by
// its owner.
func (r *ProfileRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ProfileRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutProfile stores a profile, overwriting any existing profile with the
// same user ID.
func (r *ProfileRepository) PutProfile(ctx context.Context, profile *core.UserProfile) error {
	if err := core.ValidateProfile(profile); err != nil {
		return err
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeProfileKey(profile.UserID)
		if err := tx.Set(key, storage.MarshalProfile(profile)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetProfile retrieves a profile by user ID.
func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*core.UserProfile, error) {
	var result *core.UserProfile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProfileKey(userID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalProfile(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// ListProfiles retrieves all stored profiles ordered by user ID.
func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]*core.UserProfile, error) {
	var results []*core.UserProfile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(profilePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var profile *core.UserProfile
			err := iter.Item().Value(func(val []byte) error {
				var err error
				profile, err = storage.UnmarshalProfile(val)
				return err
			})
			if err != nil {
				return err
			}
			if profile != nil {
				results = append(results, profile)
			}
		}
		return nil
	}, false)
	return results, err
}
