package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/server/storage"
)

// SaveSnapshot stores the envelope JSON for a canonical key, replacing
// any previous snapshot
func (s *Storage) SaveSnapshot(ctx context.Context, key string, data []byte, updatedAt time.Time) error {
	query := `
		INSERT INTO snapshots (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, key, data, updatedAt); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// GetSnapshot retrieves the stored snapshot for a canonical key
func (s *Storage) GetSnapshot(ctx context.Context, key string) (*models.SyncSnapshot, error) {
	query := `SELECT key, data, updated_at FROM snapshots WHERE key = ?`

	snapshot := &models.SyncSnapshot{}
	err := s.db.QueryRowContext(ctx, query, key).Scan(
		&snapshot.Key,
		&snapshot.Data,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return snapshot, nil
}

// GetTimestamp retrieves the updated-at instant for a canonical key.
// Accounts that never pushed report the zero time.
func (s *Storage) GetTimestamp(ctx context.Context, key string) (time.Time, error) {
	var updatedAt time.Time
	err := s.db.QueryRowContext(ctx,
		`SELECT updated_at FROM snapshots WHERE key = ?`, key).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to get snapshot timestamp: %w", err)
	}
	return updatedAt, nil
}
