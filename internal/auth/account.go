// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

// Package auth implements the credential issuance and session-authentication
// subsystem: account registration, login, and token issuance.
//
// # Architecture
//
// The entity and repository contract in this package have no dependencies on
// outer layers (HTTP, SQL). The service orchestrates them through interfaces,
// which keeps the security-critical logic testable with in-memory fakes.
package auth

import (
	"time"
)

// Account represents a registered user's identity and credential record.
//
// # Rules
//   - ID is assigned by the store and immutable.
//   - Email is the unique identity key; exactly one Account may exist per
//     email value at any time (enforced by the store's UNIQUE constraint).
//   - Username is display-only and not unique.
//   - PasswordHash is a one-way bcrypt hash, generated exclusively via
//     [Service.Register]. Plaintext is never stored.
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
}
