// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/phamduc/skyreport/internal/platform/apperr"
	"github.com/phamduc/skyreport/internal/platform/constants"
	"github.com/phamduc/skyreport/internal/platform/ctxutil"
	"github.com/phamduc/skyreport/internal/platform/respond"
	"github.com/phamduc/skyreport/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in the gate.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenService], allowing us to easily inject fakes during unit testing.
type TokenVerifier interface {
	VerifySessionToken(tokenStr string) (*sec.SessionClaims, error)
}

// Authenticate is the access gate guarding every protected endpoint.
//
// # Flow
//  1. Extract the token from 'Authorization: Bearer <token>'.
//  2. If no token is present (no header, no scheme, or an empty token
//     after the scheme), reject with HTTP 401. The downstream handler is
//     never invoked.
//  3. If a token is present but tampered, expired, or carries the wrong
//     scheme, reject with HTTP 403. The downstream handler is never invoked.
//  4. On success, inject the verified [*sec.SessionClaims] into the request
//     context and invoke the downstream handler.
//
// # Statelessness
//
// Verification is a pure computation (signature check + clock comparison).
// The gate performs no store access and never re-resolves the account: the
// token's subject claim is authoritative for the request's duration.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Credential Extraction ──────────────────────────────────────
			authHeader := request.Header.Get(constants.HeaderAuthorization)
			if authHeader == "" {
				respond.Error(writer, request, apperr.Unauthorized("No token provided"))
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			// No token after splitting off the scheme counts as a missing
			// credential. A token under the wrong scheme is an attempt that
			// failed, which is a Forbidden case.
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[1] == "" {
				respond.Error(writer, request, apperr.Unauthorized("No token provided"))
				return
			}
			if !strings.EqualFold(parts[0], constants.BearerPrefix) {
				respond.Error(writer, request, apperr.Forbidden("Invalid token"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifySessionToken(parts[1])
			if err != nil {
				respond.Error(writer, request, apperr.Forbidden("Invalid token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAccount(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
