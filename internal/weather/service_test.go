// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package weather_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamduc/skyreport/internal/platform/apperr"
	"github.com/phamduc/skyreport/internal/weather"
)

// stubProvider returns a canned payload or error and counts calls.
type stubProvider struct {
	payload []byte
	err     error
	calls   int
}

func (provider *stubProvider) CurrentByCity(_ context.Context, _ string) ([]byte, error) {
	provider.calls++
	if provider.err != nil {
		return nil, provider.err
	}
	return provider.payload, nil
}

// memoryPayloadCache is an in-process stand-in for the Redis cache with
// injectable read and write failures.
type memoryPayloadCache struct {
	mutex    sync.Mutex
	entries  map[string][]byte
	getErr   error
	setErr   error
	setCalls int
}

func newMemoryPayloadCache() *memoryPayloadCache {
	return &memoryPayloadCache{entries: make(map[string][]byte)}
}

func (cache *memoryPayloadCache) Get(_ context.Context, city string) ([]byte, error) {
	cache.mutex.Lock()
	defer cache.mutex.Unlock()

	if cache.getErr != nil {
		return nil, cache.getErr
	}
	payload, ok := cache.entries[city]
	if !ok {
		return nil, weather.ErrCacheMiss
	}
	return payload, nil
}

func (cache *memoryPayloadCache) Set(_ context.Context, city string, payload []byte) error {
	cache.mutex.Lock()
	defer cache.mutex.Unlock()

	cache.setCalls++
	if cache.setErr != nil {
		return cache.setErr
	}
	cache.entries[city] = payload
	return nil
}

// memorySearchRepository records inserted searches in order.
type memorySearchRepository struct {
	mutex    sync.Mutex
	inserted []*weather.Search
	err      error
}

func (repo *memorySearchRepository) Insert(_ context.Context, search *weather.Search) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	if repo.err != nil {
		return repo.err
	}
	search.ID = int64(len(repo.inserted) + 1)
	repo.inserted = append(repo.inserted, search)
	return nil
}

/*
TestService_Search_CacheMiss verifies the miss path: the provider is
called, the payload is cached, and the search is recorded.
*/
func TestService_Search_CacheMiss(t *testing.T) {
	provider := &stubProvider{payload: []byte(`{"location":{"name":"Hanoi"}}`)}
	cache := newMemoryPayloadCache()
	repo := &memorySearchRepository{}

	service := weather.NewService(provider, repo, cache)

	payload, err := service.Search(context.Background(), 42, "hanoi")
	require.NoError(t, err)

	assert.Equal(t, provider.payload, payload)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, provider.payload, cache.entries["hanoi"])

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, int64(42), repo.inserted[0].AccountID)
	assert.Equal(t, "hanoi", repo.inserted[0].City)
}

/*
TestService_Search_CacheHit verifies a warm cache short-circuits the
provider entirely while the search is still recorded.
*/
func TestService_Search_CacheHit(t *testing.T) {
	cached := []byte(`{"location":{"name":"Hue"}}`)

	provider := &stubProvider{payload: []byte(`{"fresh":true}`)}
	cache := newMemoryPayloadCache()
	cache.entries["hue"] = cached
	repo := &memorySearchRepository{}

	service := weather.NewService(provider, repo, cache)

	payload, err := service.Search(context.Background(), 7, "hue")
	require.NoError(t, err)

	assert.Equal(t, cached, payload)
	assert.Zero(t, provider.calls)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, cached, []byte(repo.inserted[0].Payload))
}

/*
TestService_Search_ProviderRejection verifies an upstream rejection
propagates to the caller and nothing is recorded or cached.
*/
func TestService_Search_ProviderRejection(t *testing.T) {
	provider := &stubProvider{err: apperr.BadRequest("Please specify a valid location identifier")}
	cache := newMemoryPayloadCache()
	repo := &memorySearchRepository{}

	service := weather.NewService(provider, repo, cache)

	_, err := service.Search(context.Background(), 42, "atlantis")
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "BAD_REQUEST", appErr.Code)

	assert.Empty(t, repo.inserted)
	assert.Empty(t, cache.entries)
}

/*
TestService_Search_CacheOutage verifies cache failures on both read and
write are non-fatal: the lookup still succeeds via the provider.
*/
func TestService_Search_CacheOutage(t *testing.T) {
	provider := &stubProvider{payload: []byte(`{"ok":true}`)}
	cache := newMemoryPayloadCache()
	cache.getErr = errors.New("redis: connection refused")
	cache.setErr = errors.New("redis: connection refused")
	repo := &memorySearchRepository{}

	service := weather.NewService(provider, repo, cache)

	payload, err := service.Search(context.Background(), 42, "hanoi")
	require.NoError(t, err)

	assert.Equal(t, provider.payload, payload)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, 1, cache.setCalls)
	require.Len(t, repo.inserted, 1)
}

/*
TestService_Search_HistoryFault verifies a failing history insert fails
the whole lookup, so the shared report never silently misses searches.
*/
func TestService_Search_HistoryFault(t *testing.T) {
	provider := &stubProvider{payload: []byte(`{"ok":true}`)}
	repo := &memorySearchRepository{err: apperr.Store(errors.New("insert failed"))}

	service := weather.NewService(provider, repo, newMemoryPayloadCache())

	_, err := service.Search(context.Background(), 42, "hanoi")
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "STORE_ERROR", appErr.Code)
}
