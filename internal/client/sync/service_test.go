package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/relay"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/storage"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixture wires the orchestrator against in-memory mocks with a
// controllable clock.
type fixture struct {
	service  *Service
	store    *storage.SpoolStoreMock
	settings *storage.SettingsStoreMock
	relay    *relay.ClientMock

	clock time.Time

	identity     *models.SyncIdentity
	lastModified time.Time
	cooldown     time.Time
	imported     *models.ExportEnvelope
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	f.store = &storage.SpoolStoreMock{
		ExportAllFunc: func(ctx context.Context) (*models.ExportEnvelope, error) {
			return &models.ExportEnvelope{}, nil
		},
		BulkImportFunc: func(ctx context.Context, envelope *models.ExportEnvelope) ([]storage.ImportOutcome, error) {
			f.imported = envelope
			return nil, nil
		},
	}

	f.settings = &storage.SettingsStoreMock{
		GetIdentityFunc: func(ctx context.Context) (*models.SyncIdentity, error) {
			if f.identity == nil {
				return nil, storage.ErrIdentityNotFound
			}
			clone := *f.identity
			return &clone, nil
		},
		SaveIdentityFunc: func(ctx context.Context, identity *models.SyncIdentity) error {
			clone := *identity
			f.identity = &clone
			return nil
		},
		GetLastModifiedFunc: func(ctx context.Context) (time.Time, error) {
			return f.lastModified, nil
		},
		SetLastModifiedFunc: func(ctx context.Context, ts time.Time) error {
			f.lastModified = ts
			return nil
		},
		GetCooldownStampFunc: func(ctx context.Context) (time.Time, error) {
			return f.cooldown, nil
		},
		SetCooldownStampFunc: func(ctx context.Context, ts time.Time) error {
			f.cooldown = ts
			return nil
		},
		ClearSyncStateFunc: func(ctx context.Context) error {
			f.identity = nil
			f.lastModified = time.Time{}
			f.cooldown = time.Time{}
			return nil
		},
	}

	f.relay = &relay.ClientMock{}

	f.service = NewService(f.store, f.settings, f.relay, testLogger(),
		WithClock(func() time.Time { return f.clock }))
	return f
}

func (f *fixture) engage(key string) {
	f.identity = &models.SyncIdentity{
		SyncKey:    key,
		Email:      "user@example.com",
		LastSynced: f.clock.Add(-time.Hour),
	}
}

func (f *fixture) advance(d time.Duration) {
	f.clock = f.clock.Add(d)
}

func spool(id, name string) models.FilamentSpool {
	return models.FilamentSpool{ID: id, Name: name, TotalWeight: 1000}
}

func TestCreateSyncIdentity(t *testing.T) {
	f := newFixture(t)
	f.relay.CreateFunc = func(ctx context.Context, email string) (string, error) {
		return "check your email for the sync key", nil
	}

	msg, err := f.service.CreateSyncIdentity(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "check your email for the sync key", msg)

	require.NotNil(t, f.identity)
	assert.Equal(t, models.IdentityPendingVerification, f.identity.State())
	assert.Equal(t, "user@example.com", f.identity.Email)
	assert.Empty(t, f.identity.SyncKey)
}

func TestCreateSyncIdentityInvalidEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.CreateSyncIdentity(context.Background(), "not-an-email")

	var inputErr *InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Empty(t, f.relay.CreateCalls(), "no network call on invalid input")
	assert.Nil(t, f.identity)
}

func TestCreateSyncIdentityRelayDown(t *testing.T) {
	f := newFixture(t)
	f.relay.CreateFunc = func(ctx context.Context, email string) (string, error) {
		return "", &relay.TransportError{StatusCode: 503}
	}

	_, err := f.service.CreateSyncIdentity(context.Background(), "user@example.com")

	var transportErr *relay.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Nil(t, f.identity, "identity must not persist when the relay rejected the request")
}

func TestAdoptExistingKey(t *testing.T) {
	f := newFixture(t)
	f.identity = &models.SyncIdentity{Email: "user@example.com", NeedsVerification: true}

	remote := models.ExportEnvelope{Regular: []models.FilamentSpool{spool("aaaa1111", "PLA Black")}}
	f.relay.PullFunc = func(ctx context.Context, key string) (*relay.PullResult, error) {
		assert.Equal(t, "mailed-key", key)
		return &relay.PullResult{
			Envelope:    remote,
			Token:       "rotated-key",
			Email:       "user@example.com",
			AccountType: "free",
		}, nil
	}
	f.relay.PushFunc = func(ctx context.Context, key string, envelope *models.ExportEnvelope) error {
		assert.Equal(t, "rotated-key", key, "push must use the rotated key from the pull")
		return nil
	}

	outcome, err := f.service.AdoptExistingKey(context.Background(), "mailed-key")
	require.NoError(t, err)

	assert.Equal(t, ActionBidirectional, outcome.Action)
	assert.Equal(t, 1, outcome.Pulled)
	assert.Equal(t, 1, outcome.Pushed)

	require.NotNil(t, f.identity)
	assert.Equal(t, models.IdentityEngaged, f.identity.State())
	assert.Equal(t, "rotated-key", f.identity.SyncKey)
	assert.Equal(t, f.clock, f.identity.LastSynced)

	require.NotNil(t, f.imported)
	require.Len(t, f.imported.Regular, 1)
	assert.Equal(t, "PLA Black", f.imported.Regular[0].Name)
}

func TestAdoptExistingKeyRejected(t *testing.T) {
	f := newFixture(t)
	f.identity = &models.SyncIdentity{Email: "user@example.com", NeedsVerification: true}
	f.relay.PullFunc = func(ctx context.Context, key string) (*relay.PullResult, error) {
		return nil, &relay.RelayError{Message: "key not found"}
	}

	_, err := f.service.AdoptExistingKey(context.Background(), "wrong-key")

	var relayErr *relay.RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, "key not found", relayErr.Message)

	assert.Equal(t, models.IdentityPendingVerification, f.identity.State(), "pending state survives a rejected key")
	assert.Empty(t, f.store.BulkImportCalls())
}

func TestAdoptExistingKeyBlankKey(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.AdoptExistingKey(context.Background(), "   ")

	var inputErr *InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Empty(t, f.relay.PullCalls())
}

func TestCheckForUpdatesRemoteNewer(t *testing.T) {
	f := newFixture(t)
	f.engage("key-1")

	remote := models.ExportEnvelope{Regular: []models.FilamentSpool{
		spool("aaaa1111", "PLA Black"),
		spool("bbbb2222", "PETG Clear"),
	}}
	f.relay.TimestampFunc = func(ctx context.Context, key string) (time.Time, error) {
		return f.clock.Add(-time.Minute), nil // newer than lastSynced (an hour ago)
	}
	f.relay.PullFunc = func(ctx context.Context, key string) (*relay.PullResult, error) {
		return &relay.PullResult{Envelope: remote, Token: "key-1", Email: "user@example.com"}, nil
	}
	f.relay.PushFunc = func(ctx context.Context, key string, envelope *models.ExportEnvelope) error {
		return nil
	}

	outcome, err := f.service.CheckForUpdates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ActionBidirectional, outcome.Action)
	assert.Equal(t, 2, outcome.Pulled)
	assert.Equal(t, 2, outcome.Pushed)
	assert.Len(t, f.relay.PullCalls(), 1)
	assert.Len(t, f.relay.PushCalls(), 1)
	assert.Equal(t, f.clock, f.identity.LastSynced)
	assert.Equal(t, f.clock, f.cooldown, "cooldown starts after a successful sync")
}

func TestCheckForUpdatesLocalNewer(t *testing.T) {
	f := newFixture(t)
	f.engage("key-1")
	f.lastModified = f.clock.Add(-time.Minute) // edited after lastSynced

	local := models.ExportEnvelope{Regular: []models.FilamentSpool{spool("aaaa1111", "PLA Black")}}
	f.store.ExportAllFunc = func(ctx context.Context) (*models.ExportEnvelope, error) {
		return &local, nil
	}
	f.relay.TimestampFunc = func(ctx context.Context, key string) (time.Time, error) {
		return f.identity.LastSynced, nil // remote has nothing new
	}
	f.relay.PushFunc = func(ctx context.Context, key string, envelope *models.ExportEnvelope) error {
		assert.Equal(t, "key-1", key)
		require.Len(t, envelope.Regular, 1)
		return nil
	}

	outcome, err := f.service.CheckForUpdates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ActionPush, outcome.Action)
	assert.Equal(t, 1, outcome.Pushed)
	assert.Empty(t, f.relay.PullCalls(), "push-only branch must not pull")
	assert.Equal(t, f.clock, f.identity.LastSynced)
}

func TestCheckForUpdatesUpToDate(t *testing.T) {
	f := newFixture(t)
	f.engage("key-1")
	f.lastModified = f.identity.LastSynced.Add(-time.Minute)

	f.relay.TimestampFunc = func(ctx context.Context, key string) (time.Time, error) {
		return f.identity.LastSynced, nil
	}

	outcome, err := f.service.CheckForUpdates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ActionNone, outcome.Action)
	assert.True(t, outcome.UpToDate)
	assert.Empty(t, f.relay.PullCalls())
	assert.Empty(t, f.relay.PushCalls())
	assert.Equal(t, f.clock, f.cooldown, "the no-op branch still starts the cooldown")
}

func TestCheckForUpdatesCooldown(t *testing.T) {
	f := newFixture(t)
	f.engage("key-1")
	f.cooldown = f.clock.Add(-2 * time.Second) // 3s of the 5s window left

	_, err := f.service.CheckForUpdates(context.Background())

	var cooldownErr *CooldownError
	require.ErrorAs(t, err, &cooldownErr)
	assert.Equal(t, 3, cooldownErr.RemainingSeconds())
	assert.Empty(t, f.relay.TimestampCalls(), "no relay call inside the cooldown window")
}

func TestCheckForUpdatesCooldownExpires(t *testing.T) {
	f := newFixture(t)
	f.engage("key-1")
	f.cooldown = f.clock
	f.relay.TimestampFunc = func(ctx context.Context, key string) (time.Time, error) {
		return f.identity.LastSynced, nil
	}

	_, err := f.service.CheckForUpdates(context.Background())
	var cooldownErr *CooldownError
	require.ErrorAs(t, err, &cooldownErr)

	f.advance(DefaultCooldownWindow + time.Millisecond)

	outcome, err := f.service.CheckForUpdates(context.Background())
	require.NoError(t, err)
	assert.True(t, outcome.UpToDate)
}

func TestCheckForUpdatesNoIdentity(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.CheckForUpdates(context.Background())
	require.ErrorIs(t, err, ErrNoIdentity)
}

func TestCheckForUpdatesVerificationPending(t *testing.T) {
	f := newFixture(t)
	f.identity = &models.SyncIdentity{Email: "user@example.com", NeedsVerification: true}

	_, err := f.service.CheckForUpdates(context.Background())
	require.ErrorIs(t, err, ErrVerificationPending)
	assert.Empty(t, f.relay.TimestampCalls())
}

func TestCheckForUpdatesPushRejected(t *testing.T) {
	f := newFixture(t)
	f.engage("key-1")
	f.lastModified = f.clock.Add(-time.Minute)
	before := f.identity.LastSynced

	f.relay.TimestampFunc = func(ctx context.Context, key string) (time.Time, error) {
		return f.identity.LastSynced, nil
	}
	f.relay.PushFunc = func(ctx context.Context, key string, envelope *models.ExportEnvelope) error {
		return &relay.RelayError{Message: "account storage limit reached"}
	}

	_, err := f.service.CheckForUpdates(context.Background())

	var relayErr *relay.RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, before, f.identity.LastSynced, "a rejected push must not advance lastSynced")
}

func TestForcePushBypassesCooldown(t *testing.T) {
	f := newFixture(t)
	f.engage("key-1")
	f.cooldown = f.clock // window fully closed

	local := models.ExportEnvelope{Regular: []models.FilamentSpool{spool("aaaa1111", "PLA Black")}}
	f.store.ExportAllFunc = func(ctx context.Context) (*models.ExportEnvelope, error) {
		return &local, nil
	}
	f.relay.PushFunc = func(ctx context.Context, key string, envelope *models.ExportEnvelope) error {
		return nil
	}

	outcome, err := f.service.ForcePush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ActionPush, outcome.Action)
	assert.Equal(t, 1, outcome.Pushed)
	assert.Empty(t, f.relay.TimestampCalls(), "forced push skips the timestamp compare")
}

func TestForcePullBypassesCooldown(t *testing.T) {
	f := newFixture(t)
	f.engage("key-1")
	f.cooldown = f.clock

	remote := models.ExportEnvelope{Regular: []models.FilamentSpool{spool("aaaa1111", "PLA Black")}}
	f.relay.PullFunc = func(ctx context.Context, key string) (*relay.PullResult, error) {
		return &relay.PullResult{Envelope: remote, Token: "key-1", Email: "user@example.com"}, nil
	}

	outcome, err := f.service.ForcePull(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ActionPull, outcome.Action)
	assert.Equal(t, 1, outcome.Pulled)
	assert.Zero(t, outcome.Pushed)
	assert.Empty(t, f.relay.PushCalls(), "forced pull never pushes")
	assert.Equal(t, f.clock, f.cooldown, "forced pull restarts the cooldown")
}

func TestForcePullCountsOverwrites(t *testing.T) {
	f := newFixture(t)
	f.engage("key-1")

	local := models.ExportEnvelope{Regular: []models.FilamentSpool{
		spool("aaaa1111", "PLA Black (local)"),
		spool("cccc3333", "ABS Red"),
	}}
	f.store.ExportAllFunc = func(ctx context.Context) (*models.ExportEnvelope, error) {
		return &local, nil
	}
	remote := models.ExportEnvelope{Regular: []models.FilamentSpool{spool("aaaa1111", "PLA Black (remote)")}}
	f.relay.PullFunc = func(ctx context.Context, key string) (*relay.PullResult, error) {
		return &relay.PullResult{Envelope: remote, Token: "key-1", Email: "user@example.com"}, nil
	}

	outcome, err := f.service.ForcePull(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Overwritten)
	require.NotNil(t, f.imported)
	require.Len(t, f.imported.Regular, 2)
	assert.Equal(t, "PLA Black (remote)", f.imported.Regular[0].Name)
}

func TestPartialSyncOnImportFailure(t *testing.T) {
	f := newFixture(t)
	f.engage("key-1")

	remote := models.ExportEnvelope{Regular: []models.FilamentSpool{spool("aaaa1111", "PLA Black")}}
	f.relay.PullFunc = func(ctx context.Context, key string) (*relay.PullResult, error) {
		return &relay.PullResult{Envelope: remote, Token: "key-1", Email: "user@example.com"}, nil
	}
	f.store.BulkImportFunc = func(ctx context.Context, envelope *models.ExportEnvelope) ([]storage.ImportOutcome, error) {
		return nil, &storage.ImportError{ID: "aaaa1111", Err: errors.New("disk full")}
	}

	outcome, err := f.service.ForcePull(context.Background())

	var partialErr *PartialSyncError
	require.ErrorAs(t, err, &partialErr)
	require.NotNil(t, outcome, "partial success still reports the pull outcome")
	assert.Equal(t, 1, outcome.Pulled)
	assert.Equal(t, f.clock, f.identity.LastSynced, "pull bookkeeping advanced before the import failed")
	assert.Empty(t, f.relay.PushCalls(), "a partial bidirectional sync must not push")
}

func TestConcurrentSyncRejected(t *testing.T) {
	f := newFixture(t)
	f.engage("key-1")

	started := make(chan struct{})
	proceed := make(chan struct{})
	f.relay.TimestampFunc = func(ctx context.Context, key string) (time.Time, error) {
		close(started)
		<-proceed
		return f.identity.LastSynced, nil
	}

	done := make(chan error, 1)
	go func() {
		_, err := f.service.CheckForUpdates(context.Background())
		done <- err
	}()

	<-started
	_, err := f.service.CheckForUpdates(context.Background())
	require.ErrorIs(t, err, ErrSyncInProgress)

	close(proceed)
	require.NoError(t, <-done)

	// The slot is released once the first operation finishes
	f.advance(DefaultCooldownWindow + time.Second)
	f.relay.TimestampFunc = func(ctx context.Context, key string) (time.Time, error) {
		return f.identity.LastSynced, nil
	}
	_, err = f.service.CheckForUpdates(context.Background())
	require.NoError(t, err)
}

func TestRemoveSync(t *testing.T) {
	f := newFixture(t)
	f.engage("key-1")
	f.lastModified = f.clock
	f.cooldown = f.clock

	err := f.service.RemoveSync(context.Background(), func() bool { return true })
	require.NoError(t, err)

	assert.Nil(t, f.identity)
	assert.True(t, f.lastModified.IsZero())
	assert.True(t, f.cooldown.IsZero())
}

func TestRemoveSyncDeclined(t *testing.T) {
	f := newFixture(t)
	f.engage("key-1")

	err := f.service.RemoveSync(context.Background(), func() bool { return false })
	require.ErrorIs(t, err, ErrRemovalNotConfirmed)
	assert.NotNil(t, f.identity, "declined removal leaves the identity intact")

	err = f.service.RemoveSync(context.Background(), nil)
	require.ErrorIs(t, err, ErrRemovalNotConfirmed)
}

func TestRequestKeyRecovery(t *testing.T) {
	f := newFixture(t)
	f.relay.ForgotFunc = func(ctx context.Context, email string) (string, error) {
		return "if the address is registered, keys were sent", nil
	}

	msg, err := f.service.RequestKeyRecovery(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "if the address is registered, keys were sent", msg)

	_, err = f.service.RequestKeyRecovery(context.Background(), "bad address")
	var inputErr *InvalidInputError
	require.ErrorAs(t, err, &inputErr)
}

func TestUpdateLastModified(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.service.UpdateLastModified(context.Background()))
	assert.Equal(t, f.clock, f.lastModified)

	f.advance(time.Minute)
	require.NoError(t, f.service.UpdateLastModified(context.Background()))
	assert.Equal(t, f.clock, f.lastModified)
}

func TestStatus(t *testing.T) {
	f := newFixture(t)

	status, err := f.service.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.IdentityNone, status.State)
	assert.False(t, status.HasUnsyncedChanges)

	f.engage("key-1")
	f.lastModified = f.clock.Add(-time.Minute)
	f.cooldown = f.clock.Add(-time.Second)

	status, err = f.service.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.IdentityEngaged, status.State)
	assert.Equal(t, "user@example.com", status.Email)
	assert.Equal(t, "key-1", status.SyncKey)
	assert.True(t, status.HasUnsyncedChanges, "edits after lastSynced are unsynced")
	assert.Equal(t, 4*time.Second, status.CooldownRemaining)
}

func TestCooldownWindowOption(t *testing.T) {
	f := newFixture(t)
	f.service = NewService(f.store, f.settings, f.relay, testLogger(),
		WithClock(func() time.Time { return f.clock }),
		WithCooldownWindow(30*time.Second))
	f.engage("key-1")
	f.cooldown = f.clock.Add(-10 * time.Second)

	_, err := f.service.CheckForUpdates(context.Background())

	var cooldownErr *CooldownError
	require.ErrorAs(t, err, &cooldownErr)
	assert.Equal(t, 20, cooldownErr.RemainingSeconds())
}

func TestAlertFromError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		variant AlertVariant
		message string
	}{
		{
			name:    "cooldown is informational",
			err:     &CooldownError{Remaining: 3 * time.Second},
			variant: AlertInfo,
			message: "sync is cooling down, try again in 3 seconds",
		},
		{
			name:    "invalid input is a warning",
			err:     &InvalidInputError{Err: errors.New("invalid email address")},
			variant: AlertWarning,
			message: "invalid email address",
		},
		{
			name:    "transport failure gets a generic message",
			err:     &relay.TransportError{StatusCode: 502},
			variant: AlertError,
			message: "could not reach the sync relay, check your connection and try again",
		},
		{
			name:    "relay message passes through verbatim",
			err:     &relay.RelayError{Message: "key not found"},
			variant: AlertError,
			message: "key not found",
		},
		{
			name:    "partial sync is a warning",
			err:     &PartialSyncError{Err: errors.New("disk full")},
			variant: AlertWarning,
			message: "sync reached the relay but updating the local store failed: disk full",
		},
		{
			name:    "store unavailable",
			err:     storage.ErrStoreUnavailable,
			variant: AlertError,
			message: "the local database is unavailable",
		},
		{
			name:    "in progress is informational",
			err:     ErrSyncInProgress,
			variant: AlertInfo,
			message: "a sync operation is already in progress",
		},
		{
			name:    "unknown errors fall back to error",
			err:     errors.New("boom"),
			variant: AlertError,
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := AlertFromError(tt.err)
			assert.Equal(t, tt.variant, alert.Variant)
			assert.Equal(t, tt.message, alert.Message)
		})
	}
}
