package sync

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Orchestrator-level errors
var (
	// ErrNoIdentity indicates that sync was never set up on this device
	ErrNoIdentity = errors.New("sync is not configured")

	// ErrVerificationPending indicates that a key was requested but the
	// device has not adopted it yet; sync operations are blocked.
	ErrVerificationPending = errors.New("sync key verification is pending; enter the key from your email first")

	// ErrSyncInProgress indicates that another sync operation holds the
	// in-flight slot. Operations are rejected, never interleaved.
	ErrSyncInProgress = errors.New("a sync operation is already in progress")

	// ErrRemovalNotConfirmed indicates that the caller did not confirm
	// sync removal.
	ErrRemovalNotConfirmed = errors.New("sync removal was not confirmed")
)

// CooldownError rejects a non-forced sync attempt inside the cooldown
// window, reporting the seconds left.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("sync is cooling down, try again in %d seconds", e.RemainingSeconds())
}

// RemainingSeconds returns the remaining window rounded up to whole seconds.
func (e *CooldownError) RemainingSeconds() int {
	return int(math.Ceil(e.Remaining.Seconds()))
}

// InvalidInputError wraps a validation failure caught before any
// network call was made.
type InvalidInputError struct {
	Err error
}

func (e *InvalidInputError) Error() string { return e.Err.Error() }

func (e *InvalidInputError) Unwrap() error { return e.Err }

// PartialSyncError reports that the relay side of a sync succeeded but
// applying the result to the local store failed. Distinct from total
// failure: the remote bookkeeping is already ahead of local state.
type PartialSyncError struct {
	Err error
}

func (e *PartialSyncError) Error() string {
	return fmt.Sprintf("sync reached the relay but updating the local store failed: %v", e.Err)
}

func (e *PartialSyncError) Unwrap() error { return e.Err }
