package storage

import "errors"

// Common storage errors
var (
	// ErrAccountNotFound indicates that no account matches the key or
	// alias
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists indicates a key collision on insert
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrSnapshotNotFound indicates the account has never pushed
	ErrSnapshotNotFound = errors.New("snapshot not found")
)
