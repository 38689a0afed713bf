// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamduc/skyreport/internal/auth"
)

// newAuthServer stands up the auth routes exactly as the API mounts them.
func newAuthServer(t *testing.T) (*httptest.Server, *memoryAccountRepository) {
	t.Helper()

	repo := newMemoryAccountRepository()
	handler := auth.NewHandler(newTestService(t, repo))

	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)

	return server, repo
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	response, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = response.Body.Close() })

	return response
}

/*
TestHandler_Register walks the register endpoint through its full contract:
201 on success, 400 on any missing field, 409 on a duplicate email.
*/
func TestHandler_Register(t *testing.T) {
	server, repo := newAuthServer(t)

	// Missing fields never reach the store.
	tests := []struct {
		name    string
		payload map[string]string
	}{
		{"missing_username", map[string]string{"email": "a@example.com", "password": "x"}},
		{"missing_email", map[string]string{"username": "a", "password": "x"}},
		{"missing_password", map[string]string{"username": "a", "email": "a@example.com"}},
		{"empty_body", map[string]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := postJSON(t, server.URL+"/register", tt.payload)
			assert.Equal(t, http.StatusBadRequest, response.StatusCode)
		})
	}
	assert.Empty(t, repo.byEmail)

	// Successful registration returns only a confirmation message.
	response := postJSON(t, server.URL+"/register", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, response.StatusCode)

	var created map[string]string
	require.NoError(t, json.NewDecoder(response.Body).Decode(&created))
	assert.Equal(t, "User created successfully", created["message"])
	assert.NotContains(t, created, "password")

	// A duplicate email conflicts regardless of the other fields.
	response = postJSON(t, server.URL+"/register", map[string]string{
		"username": "impostor", "email": "alice@example.com", "password": "other-pass",
	})
	assert.Equal(t, http.StatusConflict, response.StatusCode)
}

/*
TestHandler_Login walks the login endpoint through its full contract:
200 with a non-empty token, 400 missing field, 404 unknown account,
401 wrong password.
*/
func TestHandler_Login(t *testing.T) {
	server, _ := newAuthServer(t)

	response := postJSON(t, server.URL+"/register", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, response.StatusCode)

	tests := []struct {
		name       string
		payload    map[string]string
		wantStatus int
	}{
		{"success", map[string]string{"email": "alice@example.com", "password": "secret123"}, http.StatusOK},
		{"missing_password", map[string]string{"email": "alice@example.com"}, http.StatusBadRequest},
		{"unknown_email", map[string]string{"email": "nobody@example.com", "password": "secret123"}, http.StatusNotFound},
		{"wrong_password", map[string]string{"email": "alice@example.com", "password": "nope"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := postJSON(t, server.URL+"/login", tt.payload)
			assert.Equal(t, tt.wantStatus, response.StatusCode)

			if tt.wantStatus == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
				assert.NotEmpty(t, body["token"])
			}
		})
	}
}
