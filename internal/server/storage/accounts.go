package storage

import (
	"context"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
)

// AccountStorage defines the interface for sync account persistence
type AccountStorage interface {
	// CreateAccount creates a new account
	// Returns ErrAccountAlreadyExists on a key collision
	CreateAccount(ctx context.Context, account *models.SyncAccount) error

	// ResolveAccount retrieves an account by canonical key or alias.
	// Aliased lookups return the canonical account; the caller hands
	// the canonical key back to the client as the pull token.
	// Returns ErrAccountNotFound if neither matches.
	ResolveAccount(ctx context.Context, key string) (*models.SyncAccount, error)

	// GetAccountsByEmail retrieves every account registered for an
	// address. An empty slice is not an error: forgot must stay neutral.
	GetAccountsByEmail(ctx context.Context, email string) ([]*models.SyncAccount, error)

	// MarkVerified flips the verified flag on the account
	MarkVerified(ctx context.Context, key string) error

	// AddAlias maps an old key to a canonical one, so devices holding
	// the old key keep syncing after a rotation
	AddAlias(ctx context.Context, alias, canonicalKey string) error
}
