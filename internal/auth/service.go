// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package auth

import (
	"context"
	"time"

	"github.com/phamduc/skyreport/internal/platform/apperr"
	"github.com/phamduc/skyreport/internal/platform/sec"
)

// TokenProvider defines the contract for issuing session tokens.
type TokenProvider interface {
	// IssueSessionToken creates a signed session token for the given account.
	//
	// # Parameters
	//   - accountID: The numeric identifier of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed compact JWT string, or an error if signing fails.
	IssueSessionToken(accountID int64, timeToLive time.Duration) (string, error)
}

// Service implements the registration and login workflows.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	accounts AccountRepository
	tokens   TokenProvider
	hashCost int
}

// NewService constructs a new [Service] with its dependencies.
//
// hashCost is the bcrypt cost factor; out-of-range values fall back to
// [sec.DefaultHashCost] inside the hashing primitive.
func NewService(accounts AccountRepository, tokens TokenProvider, hashCost int) *Service {
	return &Service{
		accounts: accounts,
		tokens:   tokens,
		hashCost: hashCost,
	}
}

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register validates, hashes, and persists a brand new account.
//
// # Returns
//   - nil on success; the caller reveals nothing beyond a confirmation.
//   - [apperr.Conflict] if the email is already registered.
//
// # Business Rules
//   - Emails are unique. The FindByEmail pre-check below is advisory only:
//     under concurrency two requests can both pass it before either inserts,
//     so the store's UNIQUE constraint is the final arbiter and its
//     violation is the authoritative Conflict.
//   - The plaintext password exists only on the stack of this call; it is
//     hashed with a deliberately expensive adaptive cost before persistence
//     and never logged or returned.
func (service *Service) Register(ctx context.Context, input RegisterInput) error {
	// ── 1. Advisory Uniqueness Check ──────────────────────────────────────

	_, err := service.accounts.FindByEmail(ctx, input.Email)
	if err == nil {
		return apperr.Conflict("User already exists")
	}
	if ae := apperr.As(err); ae == nil || ae.Code != "NOT_FOUND" {
		// The lookup itself failed; report the store fault rather than
		// risking a blind insert.
		return err
	}

	// ── 2. Credential Hashing ─────────────────────────────────────────────

	hashedPassword, err := sec.HashPassword(input.Password, service.hashCost)
	if err != nil {
		return apperr.Internal(err)
	}

	// ── 3. Persistence ────────────────────────────────────────────────────

	account := &Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	// Insert maps a lost uniqueness race to apperr.Conflict.
	return service.accounts.Insert(ctx, account)
}

// Login authenticates credentials and issues a session token.
//
// # Returns
//   - The signed token string on success; nothing else.
//   - [apperr.NotFound] if no account matches the email.
//   - [apperr.Unauthorized] if the password does not match.
//
// # Compatibility Note
//
// Distinguishing "no such account" (404) from "wrong password" (401) reveals
// account existence to unauthenticated callers. This mirrors the observed
// API contract deliberately; collapsing the two would break existing clients.
func (service *Service) Login(ctx context.Context, email, password string) (string, error) {
	// ── 1. Account Lookup ─────────────────────────────────────────────────

	account, err := service.accounts.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	// ── 2. Credential Verification ────────────────────────────────────────

	// bcrypt's comparison is constant-time with respect to the hash contents.
	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		return "", apperr.Unauthorized("Wrong password")
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	// The token is the entire session state: no server-side record is kept,
	// so it stays verifiable independent of the store until expiry.
	token, err := service.tokens.IssueSessionToken(account.ID, SessionTokenTTL)
	if err != nil {
		return "", apperr.Internal(err)
	}

	return token, nil
}
