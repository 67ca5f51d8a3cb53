package storage

import (
	"context"
	"time"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
)

//go:generate moq -out settings_mock.go . SettingsStore

// SettingsStore persists the sync identity and the timestamps the
// orchestrator steers by. None of this data is exported or synced;
// the cooldown stamp in particular is strictly device-local.
type SettingsStore interface {
	// GetIdentity retrieves the sync identity singleton.
	// Returns ErrIdentityNotFound if sync was never set up.
	GetIdentity(ctx context.Context) (*models.SyncIdentity, error)

	// SaveIdentity stores or replaces the sync identity singleton.
	SaveIdentity(ctx context.Context, identity *models.SyncIdentity) error

	// GetLastModified returns when the local store was last mutated
	// outside of a sync operation. Zero if never.
	GetLastModified(ctx context.Context) (time.Time, error)

	// SetLastModified stamps the local modification marker.
	SetLastModified(ctx context.Context, t time.Time) error

	// GetCooldownStamp returns when the last successful sync action
	// started the cooldown. Zero if never.
	GetCooldownStamp(ctx context.Context) (time.Time, error)

	// SetCooldownStamp records the start of a cooldown window.
	SetCooldownStamp(ctx context.Context, t time.Time) error

	// ClearSyncState removes the identity and both timestamps.
	// Used by sync removal; not reversible.
	ClearSyncState(ctx context.Context) error
}
