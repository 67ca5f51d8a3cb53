package storage

import (
	"errors"
	"fmt"
)

// Common client storage errors
var (
	// ErrSpoolNotFound indicates that the spool does not exist.
	// Delete returns it so callers can treat "already gone" as success.
	ErrSpoolNotFound = errors.New("spool not found")

	// ErrIdentityNotFound indicates that no sync identity has been configured
	ErrIdentityNotFound = errors.New("sync identity not found")

	// ErrStoreUnavailable indicates that the store handle is closed or
	// was never opened. Sync operations fail fast with this before
	// attempting any network call.
	ErrStoreUnavailable = errors.New("local store is unavailable")
)

// ConflictError reports a same-id write conflict during bulk import that
// survived the automatic re-fetch-and-retry.
type ConflictError struct {
	Err error
	ID  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("write conflict on %q: %v", e.ID, e.Err)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// ImportError reports the record at which a bulk import was aborted.
// Imports are all-or-nothing for non-conflict failures.
type ImportError struct {
	Err error
	ID  string
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("bulk import aborted at %q: %v", e.ID, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }
