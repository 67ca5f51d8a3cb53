package storage

import (
	"context"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
)

//go:generate moq -out spools_mock.go . SpoolStore

// ImportOutcome describes what happened to one record during BulkImport.
type ImportOutcome struct {
	// ID of the imported record
	ID string
	// Conflicted is true when the insert hit an existing record and the
	// import was retried as an update against its current revision.
	Conflicted bool
}

// SpoolStore is the local store adapter: the contract over the browser-local
// document database that the sync engine depends on.
type SpoolStore interface {
	// ExportAll reads every spool plus known store-internal metadata
	// documents, strips revision markers, and returns both lists.
	// Must not mutate the store.
	ExportAll(ctx context.Context) (*models.ExportEnvelope, error)

	// BulkImport writes every record of the envelope. A same-id conflict
	// is resolved by re-fetching the existing record's revision and
	// retrying once as an update; the merge policy that decided what to
	// write was already applied upstream. Any non-conflict failure
	// aborts the batch and is reported as an *ImportError naming the
	// failing id.
	BulkImport(ctx context.Context, envelope *models.ExportEnvelope) ([]ImportOutcome, error)

	// Get retrieves a spool by id.
	// Returns ErrSpoolNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*models.FilamentSpool, error)

	// Put stores or updates a spool, assigning it a fresh revision.
	Put(ctx context.Context, spool *models.FilamentSpool) error

	// Delete removes a spool by id. Idempotent: a missing spool yields
	// ErrSpoolNotFound, which callers may treat as success.
	Delete(ctx context.Context, id string) error
}
