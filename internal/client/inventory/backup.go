package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
)

// ExportBackup writes the whole inventory to a JSON file. The file uses
// the same envelope shape as the wire, revision markers stripped, so a
// backup taken on one device restores cleanly on another.
func (s *service) ExportBackup(ctx context.Context, path string) error {
	envelope, err := s.store.ExportAll(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportBackup restores spools from a JSON backup file. Records that
// collide with existing ids overwrite them, same as a sync import.
func (s *service) ImportBackup(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var envelope models.ExportEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("failed to decode backup file: %w", err)
	}

	if _, err := s.store.BulkImport(ctx, &envelope); err != nil {
		return fmt.Errorf("failed to import backup: %w", err)
	}
	return s.mark(ctx)
}
