package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/server/storage"
)

// CreateAccount creates a new sync account
func (s *Storage) CreateAccount(ctx context.Context, account *models.SyncAccount) error {
	query := `
		INSERT INTO accounts (key, email, account_type, verified, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		account.Key,
		account.Email,
		account.AccountType,
		account.Verified,
		account.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrAccountAlreadyExists
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// ResolveAccount retrieves an account by canonical key, falling back to
// the alias table. The returned account always carries the canonical key.
func (s *Storage) ResolveAccount(ctx context.Context, key string) (*models.SyncAccount, error) {
	account, err := s.getAccountByKey(ctx, key)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, storage.ErrAccountNotFound) {
		return nil, err
	}

	var canonical string
	aliasQuery := `SELECT canonical_key FROM key_aliases WHERE alias = ?`
	if err := s.db.QueryRowContext(ctx, aliasQuery, key).Scan(&canonical); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to resolve alias: %w", err)
	}

	return s.getAccountByKey(ctx, canonical)
}

func (s *Storage) getAccountByKey(ctx context.Context, key string) (*models.SyncAccount, error) {
	query := `
		SELECT key, email, account_type, verified, created_at
		FROM accounts
		WHERE key = ?
	`

	account := &models.SyncAccount{}
	err := s.db.QueryRowContext(ctx, query, key).Scan(
		&account.Key,
		&account.Email,
		&account.AccountType,
		&account.Verified,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

// GetAccountsByEmail retrieves every account registered for an address
func (s *Storage) GetAccountsByEmail(ctx context.Context, email string) ([]*models.SyncAccount, error) {
	query := `
		SELECT key, email, account_type, verified, created_at
		FROM accounts
		WHERE email = ?
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.SyncAccount
	for rows.Next() {
		account := &models.SyncAccount{}
		if err := rows.Scan(
			&account.Key,
			&account.Email,
			&account.AccountType,
			&account.Verified,
			&account.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

// MarkVerified flips the verified flag on an account
func (s *Storage) MarkVerified(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET verified = 1 WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to mark account verified: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrAccountNotFound
	}
	return nil
}

// AddAlias maps an old key to a canonical one
func (s *Storage) AddAlias(ctx context.Context, alias, canonicalKey string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO key_aliases (alias, canonical_key) VALUES (?, ?)`,
		alias, canonicalKey)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrAccountAlreadyExists
		}
		return fmt.Errorf("failed to insert alias: %w", err)
	}
	return nil
}
