package storage

import (
	"context"
	"time"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
)

// SnapshotStorage defines the interface for inventory snapshot persistence
type SnapshotStorage interface {
	// SaveSnapshot stores the envelope JSON for a canonical key,
	// replacing any previous snapshot
	SaveSnapshot(ctx context.Context, key string, data []byte, updatedAt time.Time) error

	// GetSnapshot retrieves the stored snapshot
	// Returns ErrSnapshotNotFound if the account never pushed
	GetSnapshot(ctx context.Context, key string) (*models.SyncSnapshot, error)

	// GetTimestamp retrieves only the updated-at instant, the cheap
	// call behind the client's change check. Returns the zero time,
	// not an error, when no snapshot exists.
	GetTimestamp(ctx context.Context, key string) (time.Time, error)
}
