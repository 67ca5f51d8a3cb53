package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/storage"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
)

func TestIdentityRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.GetIdentity(ctx)
	assert.ErrorIs(t, err, storage.ErrIdentityNotFound)

	identity := &models.SyncIdentity{
		SyncKey:     "key-abc-123",
		Email:       "user@example.com",
		AccountType: "free",
		LastSynced:  time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.SaveIdentity(ctx, identity))

	got, err := store.GetIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, identity.SyncKey, got.SyncKey)
	assert.Equal(t, identity.Email, got.Email)
	assert.True(t, identity.LastSynced.Equal(got.LastSynced))
	assert.Equal(t, models.IdentityEngaged, got.State())
}

func TestLastModifiedRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	got, err := store.GetLastModified(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	now := time.Now().UTC()
	require.NoError(t, store.SetLastModified(ctx, now))

	got, err = store.GetLastModified(ctx)
	require.NoError(t, err)
	assert.True(t, now.Equal(got))
}

func TestCooldownStampRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	got, err := store.GetCooldownStamp(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	now := time.Now().UTC()
	require.NoError(t, store.SetCooldownStamp(ctx, now))

	got, err = store.GetCooldownStamp(ctx)
	require.NoError(t, err)
	assert.True(t, now.Equal(got))
}

func TestClearSyncState(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveIdentity(ctx, &models.SyncIdentity{SyncKey: "key"}))
	require.NoError(t, store.SetLastModified(ctx, time.Now()))
	require.NoError(t, store.SetCooldownStamp(ctx, time.Now()))

	require.NoError(t, store.ClearSyncState(ctx))

	_, err := store.GetIdentity(ctx)
	assert.ErrorIs(t, err, storage.ErrIdentityNotFound)

	lastModified, err := store.GetLastModified(ctx)
	require.NoError(t, err)
	assert.True(t, lastModified.IsZero())

	cooldown, err := store.GetCooldownStamp(ctx)
	require.NoError(t, err)
	assert.True(t, cooldown.IsZero())
}
