package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/storage"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
)

// Settings keys. scl-cooldown is device-local and never exported.
const (
	keySyncIdentity = "scl-sync"
	keyLastModified = "scl-last-modified"
	keyCooldown     = "scl-cooldown"
)

// GetIdentity retrieves the sync identity singleton
func (s *Storage) GetIdentity(ctx context.Context) (*models.SyncIdentity, error) {
	if s.db == nil {
		return nil, storage.ErrStoreUnavailable
	}

	var identity *models.SyncIdentity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return storage.ErrIdentityNotFound
		}

		data := bucket.Get([]byte(keySyncIdentity))
		if data == nil {
			return storage.ErrIdentityNotFound
		}

		identity = &models.SyncIdentity{}
		if err := json.Unmarshal(data, identity); err != nil {
			return fmt.Errorf("failed to unmarshal sync identity: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return identity, nil
}

// SaveIdentity stores or replaces the sync identity singleton
func (s *Storage) SaveIdentity(ctx context.Context, identity *models.SyncIdentity) error {
	if s.db == nil {
		return storage.ErrStoreUnavailable
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal sync identity: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if err := bucket.Put([]byte(keySyncIdentity), data); err != nil {
			return fmt.Errorf("failed to save sync identity: %w", err)
		}
		return nil
	})
}

// GetLastModified returns the local modification marker. Zero if never set.
func (s *Storage) GetLastModified(ctx context.Context) (time.Time, error) {
	return s.getTime(keyLastModified)
}

// SetLastModified stamps the local modification marker
func (s *Storage) SetLastModified(ctx context.Context, t time.Time) error {
	return s.setTime(keyLastModified, t)
}

// GetCooldownStamp returns when the last successful sync started the
// cooldown window. Zero if never.
func (s *Storage) GetCooldownStamp(ctx context.Context) (time.Time, error) {
	return s.getTime(keyCooldown)
}

// SetCooldownStamp records the start of a cooldown window
func (s *Storage) SetCooldownStamp(ctx context.Context, t time.Time) error {
	return s.setTime(keyCooldown, t)
}

// ClearSyncState removes the identity and both timestamps. Not reversible.
func (s *Storage) ClearSyncState(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStoreUnavailable
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return nil
		}
		for _, key := range []string{keySyncIdentity, keyLastModified, keyCooldown} {
			if err := bucket.Delete([]byte(key)); err != nil {
				return fmt.Errorf("failed to delete %s: %w", key, err)
			}
		}
		return nil
	})
}

// getTime reads an RFC 3339 timestamp from the settings bucket.
// A missing key is reported as the zero time, not an error.
func (s *Storage) getTime(key string) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStoreUnavailable
	}

	var result time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return nil
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}

		t, err := time.Parse(time.RFC3339Nano, string(data))
		if err != nil {
			return fmt.Errorf("failed to parse %s timestamp: %w", key, err)
		}
		result = t
		return nil
	})

	if err != nil {
		return time.Time{}, err
	}

	return result, nil
}

func (s *Storage) setTime(key string, t time.Time) error {
	if s.db == nil {
		return storage.ErrStoreUnavailable
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if err := bucket.Put([]byte(key), []byte(t.Format(time.RFC3339Nano))); err != nil {
			return fmt.Errorf("failed to save %s timestamp: %w", key, err)
		}
		return nil
	})
}
