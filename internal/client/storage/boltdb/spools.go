package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/storage"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
)

// ExportAll reads every spool plus the known local metadata documents,
// strips revision markers, and returns both lists. View-only transaction,
// the store is never mutated.
func (s *Storage) ExportAll(ctx context.Context) (*models.ExportEnvelope, error) {
	if s.db == nil {
		return nil, storage.ErrStoreUnavailable
	}

	envelope := &models.ExportEnvelope{
		Regular: []models.FilamentSpool{},
		Local:   []models.LocalDocument{},
	}

	err := s.db.View(func(tx *bbolt.Tx) error {
		spools := tx.Bucket(bucketSpools)
		if spools != nil {
			if err := spools.ForEach(func(k, v []byte) error {
				var spool models.FilamentSpool
				if err := json.Unmarshal(v, &spool); err != nil {
					return fmt.Errorf("failed to unmarshal spool %s: %w", k, err)
				}
				spool.Rev = ""
				envelope.Regular = append(envelope.Regular, spool)
				return nil
			}); err != nil {
				return err
			}
		}

		locals := tx.Bucket(bucketLocalDocs)
		if locals != nil {
			return locals.ForEach(func(k, v []byte) error {
				var doc models.LocalDocument
				if err := json.Unmarshal(v, &doc); err != nil {
					return fmt.Errorf("failed to unmarshal local doc %s: %w", k, err)
				}
				doc.Rev = ""
				envelope.Local = append(envelope.Local, doc)
				return nil
			})
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to export store: %w", err)
	}

	return envelope, nil
}

// BulkImport writes every record of the envelope inside one transaction.
// A same-id conflict is resolved by re-reading the existing record's
// revision and retrying the write as an update with a fresh revision.
// Any other failure rolls the whole batch back and reports the failing id.
func (s *Storage) BulkImport(ctx context.Context, envelope *models.ExportEnvelope) ([]storage.ImportOutcome, error) {
	if s.db == nil {
		return nil, storage.ErrStoreUnavailable
	}

	outcomes := make([]storage.ImportOutcome, 0, len(envelope.Regular)+len(envelope.Local))

	err := s.db.Update(func(tx *bbolt.Tx) error {
		spools := tx.Bucket(bucketSpools)
		for i := range envelope.Regular {
			outcome, err := importSpool(spools, &envelope.Regular[i])
			if err != nil {
				return &storage.ImportError{ID: envelope.Regular[i].ID, Err: err}
			}
			outcomes = append(outcomes, outcome)
		}

		locals := tx.Bucket(bucketLocalDocs)
		for i := range envelope.Local {
			outcome, err := importLocalDoc(locals, &envelope.Local[i])
			if err != nil {
				return &storage.ImportError{ID: envelope.Local[i].ID, Err: err}
			}
			outcomes = append(outcomes, outcome)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return outcomes, nil
}

// importSpool writes the incoming record, reporting whether it replaced
// an existing one. Which side's data wins was already decided by the
// merge engine upstream.
func importSpool(bucket *bbolt.Bucket, spool *models.FilamentSpool) (storage.ImportOutcome, error) {
	outcome := storage.ImportOutcome{ID: spool.ID}

	incoming := *spool
	if existing := bucket.Get([]byte(spool.ID)); existing != nil {
		// Same-id conflict; the write proceeds as an update with a fresh
		// revision.
		outcome.Conflicted = true
	}
	incoming.Rev = newRev()

	data, err := json.Marshal(&incoming)
	if err != nil {
		return outcome, fmt.Errorf("failed to marshal spool: %w", err)
	}
	if err := bucket.Put([]byte(incoming.ID), data); err != nil {
		return outcome, fmt.Errorf("failed to write spool: %w", err)
	}
	return outcome, nil
}

func importLocalDoc(bucket *bbolt.Bucket, doc *models.LocalDocument) (storage.ImportOutcome, error) {
	outcome := storage.ImportOutcome{ID: doc.ID}
	if existing := bucket.Get([]byte(doc.ID)); existing != nil {
		outcome.Conflicted = true
	}

	incoming := *doc
	incoming.Rev = newRev()

	data, err := json.Marshal(&incoming)
	if err != nil {
		return outcome, fmt.Errorf("failed to marshal local doc: %w", err)
	}
	if err := bucket.Put([]byte(incoming.ID), data); err != nil {
		return outcome, fmt.Errorf("failed to write local doc: %w", err)
	}
	return outcome, nil
}

// Get retrieves a spool by id
func (s *Storage) Get(ctx context.Context, id string) (*models.FilamentSpool, error) {
	if s.db == nil {
		return nil, storage.ErrStoreUnavailable
	}

	var spool *models.FilamentSpool

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSpools)
		if bucket == nil {
			return storage.ErrSpoolNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrSpoolNotFound
		}

		spool = &models.FilamentSpool{}
		if err := json.Unmarshal(data, spool); err != nil {
			return fmt.Errorf("failed to unmarshal spool: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return spool, nil
}

// Put stores or updates a spool, assigning a fresh revision marker.
func (s *Storage) Put(ctx context.Context, spool *models.FilamentSpool) error {
	if s.db == nil {
		return storage.ErrStoreUnavailable
	}

	stored := *spool
	stored.Rev = newRev()

	data, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("failed to marshal spool: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSpools)
		if err := bucket.Put([]byte(stored.ID), data); err != nil {
			return fmt.Errorf("failed to save spool: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	spool.Rev = stored.Rev
	return nil
}

// Delete removes a spool by id. A missing spool yields ErrSpoolNotFound
// so callers can treat "already gone" as success.
func (s *Storage) Delete(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStoreUnavailable
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSpools)
		if bucket == nil || bucket.Get([]byte(id)) == nil {
			return storage.ErrSpoolNotFound
		}
		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete spool: %w", err)
		}
		return nil
	})
}

// newRev generates a store revision marker
func newRev() string {
	return uuid.NewString()
}
