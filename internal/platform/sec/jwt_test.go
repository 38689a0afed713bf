// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamduc/skyreport/internal/platform/sec"
)

const testSecret = "unit-test-signing-secret"

/*
TestNewTokenService_EmptySecret verifies that the constructor refuses an
empty signing secret, which is a fatal configuration error rather than a per-request one.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	service, err := sec.NewTokenService("", "skyreport.test")
	assert.Nil(t, service)
	require.Error(t, err)
}

/*
TestTokenService_IssueAndVerify checks the full round-trip: a freshly issued
token verifies, and its claims carry the subject identity and time bounds.
*/
func TestTokenService_IssueAndVerify(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "skyreport.test")
	require.NoError(t, err)

	token, err := service.IssueSessionToken(42, 3*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifySessionToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "skyreport.test", claims.Issuer)

	// issued-at <= now < expiry, with the full 3h lifetime encoded.
	assert.False(t, claims.IssuedAt.After(time.Now()))
	assert.WithinDuration(t, time.Now().Add(3*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

/*
TestTokenService_Expired asserts that an expired token is rejected: a token
whose lifetime has elapsed is permanently invalid.
*/
func TestTokenService_Expired(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "skyreport.test")
	require.NoError(t, err)

	// Issue a token that expired one minute ago.
	token, err := service.IssueSessionToken(7, -1*time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifySessionToken(token)
	assert.Nil(t, claims)
	require.Error(t, err)
}

/*
TestTokenService_Tampered asserts that modifying any part of the compact
serialization invalidates the signature.
*/
func TestTokenService_Tampered(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "skyreport.test")
	require.NoError(t, err)

	token, err := service.IssueSessionToken(7, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	tests := []struct {
		name     string
		tampered string
	}{
		{"flipped_payload", parts[0] + ".eyJ1aWQiOjk5OX0." + parts[2]},
		{"truncated_signature", parts[0] + "." + parts[1] + "." + parts[2][:len(parts[2])-2]},
		{"garbage", "not-a-token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.VerifySessionToken(tt.tampered)
			assert.Nil(t, claims)
			assert.Error(t, err)
		})
	}
}

/*
TestTokenService_WrongSecret asserts that tokens signed under a different
secret never verify: the symmetric secret is the entire trust anchor.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	issuer, err := sec.NewTokenService("secret-one", "skyreport.test")
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("secret-two", "skyreport.test")
	require.NoError(t, err)

	token, err := issuer.IssueSessionToken(7, time.Hour)
	require.NoError(t, err)

	claims, err := verifier.VerifySessionToken(token)
	assert.Nil(t, claims)
	require.Error(t, err)
}
