package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/storage"
)

func TestProfileRepository(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	profile := &core.UserProfile{
		UserID:        "u1",
		Name:          "Grace Hopper",
		Address:       "1 Navy Yard",
		Country:       "USA",
		Age:           45,
		Preferences:   map[string]string{"sort": "score"},
		SearchHistory: []string{"compilers"},
	}
	require.NoError(t, repos.Profiles.PutProfile(ctx, profile))

	t.Run("round trip", func(t *testing.T) {
		got, err := repos.Profiles.GetProfile(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, profile, got)
	})

	t.Run("missing profile", func(t *testing.T) {
		_, err := repos.Profiles.GetProfile(ctx, "ghost")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("overwrite appends history", func(t *testing.T) {
		updated := *profile
		updated.SearchHistory = append([]string{}, profile.SearchHistory...)
		updated.SearchHistory = append(updated.SearchHistory, "linkers")
		require.NoError(t, repos.Profiles.PutProfile(ctx, &updated))

		got, err := repos.Profiles.GetProfile(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"compilers", "linkers"}, got.SearchHistory)
	})

	t.Run("list", func(t *testing.T) {
		require.NoError(t, repos.Profiles.PutProfile(ctx, &core.UserProfile{UserID: "u2", Name: "Ada"}))

		profiles, err := repos.Profiles.ListProfiles(ctx)
		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.Equal(t, "u1", profiles[0].UserID)
		assert.Equal(t, "u2", profiles[1].UserID)
	})

	t.Run("invalid profile rejected", func(t *testing.T) {
		err := repos.Profiles.PutProfile(ctx, &core.UserProfile{UserID: ""})
		assert.ErrorIs(t, err, core.ErrEmptyUserID)
	})
}
