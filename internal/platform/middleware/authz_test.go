// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamduc/skyreport/internal/platform/ctxutil"
	"github.com/phamduc/skyreport/internal/platform/middleware"
	"github.com/phamduc/skyreport/internal/platform/sec"
)

/*
TestAuthenticate exercises the access gate against a real token service:
an absent token (no header, no scheme, or empty after the scheme) yields
401, bad or expired tokens yield 403, and a valid token reaches the
downstream handler with claims in context.
*/
func TestAuthenticate(t *testing.T) {
	tokens, err := sec.NewTokenService("gate-test-secret", "skyreport.test")
	require.NoError(t, err)

	validToken, err := tokens.IssueSessionToken(42, time.Hour)
	require.NoError(t, err)

	expiredToken, err := tokens.IssueSessionToken(42, -time.Minute)
	require.NoError(t, err)

	otherService, err := sec.NewTokenService("some-other-secret", "skyreport.test")
	require.NoError(t, err)
	foreignToken, err := otherService.IssueSessionToken(42, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantReached bool
	}{
		{"missing_header", "", http.StatusUnauthorized, false},
		{"bare_token_no_scheme", validToken, http.StatusUnauthorized, false},
		{"empty_bearer", "Bearer ", http.StatusUnauthorized, false},
		{"wrong_scheme", "Basic " + validToken, http.StatusForbidden, false},
		{"garbage_token", "Bearer not.a.jwt", http.StatusForbidden, false},
		{"foreign_signature", "Bearer " + foreignToken, http.StatusForbidden, false},
		{"expired_token", "Bearer " + expiredToken, http.StatusForbidden, false},
		{"valid_token", "Bearer " + validToken, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reached bool
			next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				reached = true

				claims := ctxutil.GetAccount(request.Context())
				require.NotNil(t, claims)
				assert.Equal(t, int64(42), claims.AccountID)

				writer.WriteHeader(http.StatusOK)
			})

			request := httptest.NewRequest(http.MethodGet, "/api/v1/weather/hanoi", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			middleware.Authenticate(tokens)(next).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantReached, reached)
		})
	}
}

/*
TestAuthenticate_SchemeCaseInsensitive confirms the Bearer scheme matches
regardless of case, as HTTP auth schemes are case-insensitive.
*/
func TestAuthenticate_SchemeCaseInsensitive(t *testing.T) {
	tokens, err := sec.NewTokenService("gate-test-secret", "skyreport.test")
	require.NoError(t, err)

	token, err := tokens.IssueSessionToken(7, time.Hour)
	require.NoError(t, err)

	next := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	})

	request := httptest.NewRequest(http.MethodGet, "/api/v1/report", nil)
	request.Header.Set("Authorization", "bearer "+token)
	recorder := httptest.NewRecorder()

	middleware.Authenticate(tokens)(next).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
