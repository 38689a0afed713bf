// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package auth

import (
	"context"
)

// AccountRepository defines the data access contract for account records.
//
// # Review Process
//
// This interface is placed in a separate file from account.go so entity
// changes and storage-contract changes can be reviewed independently.
//
// # Implementations
//
// The canonical implementation for Skyreport is PostgreSQL (store_postgres.go).
type AccountRepository interface {
	// FindByEmail returns the account registered under the given email.
	// Lookup is exact-match (case-sensitive) and has no side effects.
	//
	// Returns [apperr.NotFound] if no account is registered with this email.
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// Insert persists a brand-new account and assigns its numeric ID.
	//
	// The store is the single source of truth for email uniqueness: any
	// lookup the caller performed beforehand is advisory only. A duplicate
	// email returns [apperr.Conflict] regardless of what the caller saw.
	Insert(ctx context.Context, account *Account) error
}
