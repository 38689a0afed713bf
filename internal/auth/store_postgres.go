// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package auth

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamduc/skyreport/internal/platform/dberr"
)

// PostgresAccountRepository implements the AccountRepository interface using pgx.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE 23505) are mapped to
// domain-friendly [apperr.AppError] types via the dberr bridge so callers
// never see driver details.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL implementation of the AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

// FindByEmail retrieves an account record by its unique email address.
//
// # Returns
//
// Returns [*Account] if found, or [apperr.NotFound] if no account exists.
func (repository *PostgresAccountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at
		FROM account
		WHERE email = $1`

	account := &Account{}
	err := repository.pool.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}

	return account, nil
}

// Insert persists a new account row and fills in the store-assigned ID.
//
// A single-row INSERT is atomic: concurrent registrations for the same email
// race at the UNIQUE index, at most one wins, and the losers surface as
// [apperr.Conflict] through [dberr.Wrap].
func (repository *PostgresAccountRepository) Insert(ctx context.Context, account *Account) error {
	const query = `
		INSERT INTO account (username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	err := repository.pool.QueryRow(ctx, query,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.CreatedAt,
	).Scan(&account.ID)

	if err != nil {
		return dberr.Wrap(err, "User")
	}

	return nil
}
