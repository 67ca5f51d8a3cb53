package models

import "time"

// Account types known to the relay
const (
	AccountTypeFree = "free"
)

// SyncAccount is a relay-side account, keyed by the canonical sync key.
// Verified flips to true on the first successful pull with the mailed
// key; until then the account exists but has never been proven reachable.
type SyncAccount struct {
	Key         string
	Email       string
	AccountType string
	Verified    bool
	CreatedAt   time.Time
}

// SyncSnapshot is the relay-side copy of one account's inventory, stored
// as the raw envelope JSON so the relay never interprets spool data.
type SyncSnapshot struct {
	Key       string
	Data      []byte
	UpdatedAt time.Time
}
