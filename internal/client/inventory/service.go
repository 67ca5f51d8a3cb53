// Package inventory implements spool and usage-log operations on top of
// the local store. It owns the used_weight invariant: the stored value
// always equals the sum of all usage-log weight deltas, adjusted on
// every log add, edit, and delete.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/storage"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/validation"
)

// ErrUsageEntryNotFound indicates the usage-log entry id is not present
// on the spool.
var ErrUsageEntryNotFound = errors.New("usage entry not found")

//go:generate moq -out marker_mock.go . Marker

// Marker stamps the local modification marker after a successful
// mutation. The sync orchestrator implements it; the stamp is what
// drives its push-only branch.
type Marker interface {
	UpdateLastModified(ctx context.Context) error
}

// Service defines the inventory operations exposed to the CLI.
type Service interface {
	CreateSpool(ctx context.Context, spool *models.FilamentSpool) error
	GetSpool(ctx context.Context, id string) (*models.FilamentSpool, error)
	ListSpools(ctx context.Context) ([]models.FilamentSpool, error)
	UpdateSpool(ctx context.Context, spool *models.FilamentSpool) error
	DeleteSpool(ctx context.Context, id string) error
	DuplicateSpool(ctx context.Context, id string) (*models.FilamentSpool, error)

	LogUsage(ctx context.Context, spoolID string, entry models.UsageEntry) (*models.UsageEntry, error)
	UpdateUsage(ctx context.Context, spoolID string, entry models.UsageEntry) error
	DeleteUsage(ctx context.Context, spoolID, entryID string) error

	ExportBackup(ctx context.Context, path string) error
	ImportBackup(ctx context.Context, path string) error
}

type service struct {
	store  storage.SpoolStore
	marker Marker
	now    func() time.Time
}

// NewService creates an inventory service.
func NewService(store storage.SpoolStore, marker Marker) Service {
	return &service{
		store:  store,
		marker: marker,
		now:    time.Now,
	}
}

// CreateSpool validates and saves a new spool. An id is assigned when
// the caller did not bring one (label codes are caller-supplied).
func (s *service) CreateSpool(ctx context.Context, spool *models.FilamentSpool) error {
	if spool.ID == "" {
		spool.ID = uuid.New().String()
	}
	if err := validateSpool(spool); err != nil {
		return err
	}

	if err := s.store.Put(ctx, spool); err != nil {
		return fmt.Errorf("failed to save spool: %w", err)
	}
	return s.mark(ctx)
}

// GetSpool fetches a single spool by id.
func (s *service) GetSpool(ctx context.Context, id string) (*models.FilamentSpool, error) {
	return s.store.Get(ctx, id)
}

// ListSpools returns every spool in the inventory.
func (s *service) ListSpools(ctx context.Context) ([]models.FilamentSpool, error) {
	envelope, err := s.store.ExportAll(ctx)
	if err != nil {
		return nil, err
	}
	return envelope.Regular, nil
}

// UpdateSpool validates and saves an edited spool.
func (s *service) UpdateSpool(ctx context.Context, spool *models.FilamentSpool) error {
	if err := validateSpool(spool); err != nil {
		return err
	}

	if err := s.store.Put(ctx, spool); err != nil {
		return fmt.Errorf("failed to save spool: %w", err)
	}
	return s.mark(ctx)
}

// DeleteSpool removes a spool. Deleting an id that is already gone is
// treated as success and does not stamp the modification marker.
func (s *service) DeleteSpool(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrSpoolNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete spool: %w", err)
	}
	return s.mark(ctx)
}

// DuplicateSpool saves a copy of an existing spool under a fresh id.
// Usage-log entry ids are regenerated so the copies never collide with
// the originals.
func (s *service) DuplicateSpool(ctx context.Context, id string) (*models.FilamentSpool, error) {
	original, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	dup := original.Duplicate()
	dup.ID = uuid.New().String()
	for i := range dup.UsageHistory {
		dup.UsageHistory[i].ID = uuid.New().String()
	}

	if err := s.store.Put(ctx, dup); err != nil {
		return nil, fmt.Errorf("failed to save duplicated spool: %w", err)
	}
	if err := s.mark(ctx); err != nil {
		return nil, err
	}
	return dup, nil
}

// LogUsage appends a usage entry to a spool and adds its weight delta
// to the spool's used weight. Returns the saved entry with its assigned
// id and timestamp.
func (s *service) LogUsage(ctx context.Context, spoolID string, entry models.UsageEntry) (*models.UsageEntry, error) {
	if err := validateUsage(&entry); err != nil {
		return nil, err
	}

	spool, err := s.store.Get(ctx, spoolID)
	if err != nil {
		return nil, err
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}

	spool.UsageHistory = append(spool.UsageHistory, entry)
	spool.UsedWeight += entry.WeightDelta

	if err := s.store.Put(ctx, spool); err != nil {
		return nil, fmt.Errorf("failed to save usage entry: %w", err)
	}
	if err := s.mark(ctx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateUsage replaces an existing usage entry and adjusts the spool's
// used weight by the difference between the old and new deltas.
func (s *service) UpdateUsage(ctx context.Context, spoolID string, entry models.UsageEntry) error {
	if err := validateUsage(&entry); err != nil {
		return err
	}

	spool, err := s.store.Get(ctx, spoolID)
	if err != nil {
		return err
	}

	idx := findUsage(spool, entry.ID)
	if idx < 0 {
		return ErrUsageEntryNotFound
	}

	spool.UsedWeight += entry.WeightDelta - spool.UsageHistory[idx].WeightDelta
	if entry.Timestamp.IsZero() {
		entry.Timestamp = spool.UsageHistory[idx].Timestamp
	}
	spool.UsageHistory[idx] = entry

	if err := s.store.Put(ctx, spool); err != nil {
		return fmt.Errorf("failed to save usage entry: %w", err)
	}
	return s.mark(ctx)
}

// DeleteUsage removes a usage entry and subtracts its weight delta from
// the spool's used weight.
func (s *service) DeleteUsage(ctx context.Context, spoolID, entryID string) error {
	spool, err := s.store.Get(ctx, spoolID)
	if err != nil {
		return err
	}

	idx := findUsage(spool, entryID)
	if idx < 0 {
		return ErrUsageEntryNotFound
	}

	spool.UsedWeight -= spool.UsageHistory[idx].WeightDelta
	spool.UsageHistory = append(spool.UsageHistory[:idx], spool.UsageHistory[idx+1:]...)

	if err := s.store.Put(ctx, spool); err != nil {
		return fmt.Errorf("failed to save spool: %w", err)
	}
	return s.mark(ctx)
}

func (s *service) mark(ctx context.Context) error {
	if err := s.marker.UpdateLastModified(ctx); err != nil {
		return fmt.Errorf("failed to stamp modification marker: %w", err)
	}
	return nil
}

func findUsage(spool *models.FilamentSpool, entryID string) int {
	for i := range spool.UsageHistory {
		if spool.UsageHistory[i].ID == entryID {
			return i
		}
	}
	return -1
}

func validateSpool(spool *models.FilamentSpool) error {
	if err := validation.ValidateSpoolID(spool.ID); err != nil {
		return err
	}
	if err := validation.ValidateHexColor(spool.Color); err != nil {
		return err
	}
	return validation.ValidateWeights(spool.UsedWeight, spool.TotalWeight)
}

func validateUsage(entry *models.UsageEntry) error {
	switch entry.Status {
	case models.UsageStatusSuccess, models.UsageStatusFailure:
		return nil
	default:
		return fmt.Errorf("invalid usage status %q", entry.Status)
	}
}
