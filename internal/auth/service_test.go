// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamduc/skyreport/internal/auth"
	"github.com/phamduc/skyreport/internal/platform/apperr"
	"github.com/phamduc/skyreport/internal/platform/sec"
)

// memoryAccountRepository is an in-memory AccountRepository that enforces the
// email uniqueness constraint atomically, the way the UNIQUE index does.
type memoryAccountRepository struct {
	mu       sync.Mutex
	nextID   int64
	byEmail  map[string]*auth.Account
	failNext error // next Insert/FindByEmail returns this store fault
}

func newMemoryAccountRepository() *memoryAccountRepository {
	return &memoryAccountRepository{byEmail: make(map[string]*auth.Account)}
}

func (repo *memoryAccountRepository) FindByEmail(_ context.Context, email string) (*auth.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.failNext != nil {
		err := repo.failNext
		repo.failNext = nil
		return nil, err
	}

	account, ok := repo.byEmail[email]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *account
	return &copied, nil
}

func (repo *memoryAccountRepository) Insert(_ context.Context, account *auth.Account) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.failNext != nil {
		err := repo.failNext
		repo.failNext = nil
		return err
	}

	// The store is the final arbiter of uniqueness.
	if _, exists := repo.byEmail[account.Email]; exists {
		return apperr.Conflict("User already exists")
	}

	repo.nextID++
	account.ID = repo.nextID
	copied := *account
	repo.byEmail[account.Email] = &copied
	return nil
}

func newTestService(t *testing.T, repo auth.AccountRepository) *auth.Service {
	t.Helper()
	tokens, err := sec.NewTokenService("service-test-secret", "skyreport.test")
	require.NoError(t, err)
	// bcrypt cost 4 keeps the suite fast without changing behavior.
	return auth.NewService(repo, tokens, 4)
}

/*
TestService_RegisterThenLogin covers the happy path end to end: registering
an account and logging in with the same credentials yields a verifiable token.
*/
func TestService_RegisterThenLogin(t *testing.T) {
	repo := newMemoryAccountRepository()
	service := newTestService(t, repo)
	ctx := context.Background()

	err := service.Register(ctx, auth.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// The stored credential is never the plaintext.
	stored, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("secret123", stored.PasswordHash))

	token, err := service.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// The token verifies independently of the store and names the account.
	verifier, err := sec.NewTokenService("service-test-secret", "skyreport.test")
	require.NoError(t, err)
	claims, err := verifier.VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.AccountID)
}

/*
TestService_RegisterDuplicate asserts that a second registration under the
same email fails with a Conflict regardless of username or password.
*/
func TestService_RegisterDuplicate(t *testing.T) {
	repo := newMemoryAccountRepository()
	service := newTestService(t, repo)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, auth.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	}))

	err := service.Register(ctx, auth.RegisterInput{
		Username: "someone-else", Email: "alice@example.com", Password: "different",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

/*
TestService_RegisterConcurrent exercises the check-then-insert race: many
goroutines register the same email simultaneously, and the store constraint,
not the advisory pre-check, guarantees at most one success.
*/
func TestService_RegisterConcurrent(t *testing.T) {
	repo := newMemoryAccountRepository()
	service := newTestService(t, repo)

	const attempts = 16
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- service.Register(context.Background(), auth.RegisterInput{
				Username: "racer", Email: "race@example.com", Password: "secret123",
			})
		}()
	}
	wg.Wait()
	close(results)

	successes, conflicts := 0, 0
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "CONFLICT", ae.Code)
		conflicts++
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
}

/*
TestService_RegisterStoreFault asserts that a failing lookup surfaces as a
server fault instead of risking a blind insert.
*/
func TestService_RegisterStoreFault(t *testing.T) {
	repo := newMemoryAccountRepository()
	repo.failNext = apperr.Store(assert.AnError)
	service := newTestService(t, repo)

	err := service.Register(context.Background(), auth.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "STORE_ERROR", ae.Code)
}

/*
TestService_LoginFailures checks the two distinct rejection kinds the login
contract exposes: unknown email (404) versus wrong password (401).
*/
func TestService_LoginFailures(t *testing.T) {
	repo := newMemoryAccountRepository()
	service := newTestService(t, repo)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, auth.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	}))

	tests := []struct {
		name     string
		email    string
		password string
		wantCode string
	}{
		{"unknown_email", "nobody@example.com", "secret123", "NOT_FOUND"},
		{"wrong_password", "alice@example.com", "wrong-pass", "UNAUTHORIZED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Login(ctx, tt.email, tt.password)
			assert.Empty(t, token)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
		})
	}
}
