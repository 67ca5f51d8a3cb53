package models

import "time"

// IdentityState describes where a device is in the sync setup lifecycle.
type IdentityState int

const (
	// IdentityNone means sync has never been set up or was removed.
	IdentityNone IdentityState = iota
	// IdentityPendingVerification means a key was requested but the
	// device has not yet pulled with it. Sync-triggering operations
	// are blocked in this state.
	IdentityPendingVerification
	// IdentityEngaged means the device holds an active sync key.
	IdentityEngaged
)

// String returns a human-readable state name
func (s IdentityState) String() string {
	switch s {
	case IdentityNone:
		return "none"
	case IdentityPendingVerification:
		return "pending verification"
	case IdentityEngaged:
		return "engaged"
	default:
		return "unknown"
	}
}

// SyncIdentity is the settings-store singleton describing this device's
// relation to the relay. LastSynced is zero until the first successful
// pull or push.
type SyncIdentity struct {
	LastSynced        time.Time `json:"last_synced"`
	SyncKey           string    `json:"sync_key"`
	Email             string    `json:"email"`
	AccountType       string    `json:"account_type"`
	NeedsVerification bool      `json:"needs_verification"`
}

// State derives the lifecycle state from the stored fields.
func (i *SyncIdentity) State() IdentityState {
	switch {
	case i == nil:
		return IdentityNone
	case i.NeedsVerification:
		return IdentityPendingVerification
	case i.SyncKey != "":
		return IdentityEngaged
	default:
		return IdentityNone
	}
}
