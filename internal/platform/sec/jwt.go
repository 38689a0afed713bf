// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

// Package sec provides cryptographic primitives and session-token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the [auth.TokenProvider] interface.
package sec

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the payload embedded inside a session token.
//
// # Why self-contained claims?
//
// By embedding the account ID directly inside the JWT, the access gate can
// reconstruct the authenticated identity WITHOUT querying the database on
// every single API request. The token is the entire session state.
type SessionClaims struct {
	jwt.RegisteredClaims

	// AccountID duplicates the subject as a numeric claim so handlers
	// don't re-parse the string form on every request.
	AccountID int64 `json:"uid"`
}

// TokenService issues and verifies session tokens using HMAC-SHA256.
//
// # Why symmetric signing?
//
// Skyreport both issues and verifies tokens inside one process, so a single
// shared secret is sufficient and keeps deployment to one environment
// variable. An asymmetric scheme only pays off when verifiers are separate
// services that must not hold signing capability.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a TokenService from the process-wide signing secret.
//
// An empty secret is a fatal configuration error: the constructor refuses to
// build a service that would sign forgeable tokens.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: signing secret must not be empty")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// IssueSessionToken creates a signed session token bound to an account.
//
// # Parameters
//   - accountID: The numeric identifier of the account.
//   - timeToLive: The duration before the token expires.
//
// # Returns
//   - A signed compact JWT string, or an error if signing fails.
func (service *TokenService) IssueSessionToken(accountID int64, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		AccountID: accountID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifySessionToken checks the signature and time bounds of a token string.
//
// # Validity
//
// A token is valid only when the HMAC signature is authentic AND
// issued-at <= now < expiry. Any malformed, tampered, or expired token
// yields an error; callers treat every failure uniformly.
func (service *TokenService) VerifySessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
			}
			return service.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
