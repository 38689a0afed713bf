// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package weather

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phamduc/skyreport/internal/platform/ctxutil"
)

// Provider defines the contract for fetching current conditions upstream.
type Provider interface {
	// CurrentByCity returns the provider's JSON payload for a city, or an
	// [apperr.BadRequest] carrying the provider's own rejection message.
	CurrentByCity(ctx context.Context, city string) ([]byte, error)
}

// PayloadCache defines the contract for the short-lived per-city cache.
type PayloadCache interface {
	// Get returns the cached payload or [ErrCacheMiss].
	Get(ctx context.Context, city string) ([]byte, error)

	// Set stores a payload for a city with the standard TTL.
	Set(ctx context.Context, city string, payload []byte) error
}

// Service implements the weather lookup use case.
type Service struct {
	provider Provider
	searches SearchRepository
	cache    PayloadCache
}

// NewService constructs a new [Service] with its dependencies.
func NewService(provider Provider, searches SearchRepository, cache PayloadCache) *Service {
	return &Service{
		provider: provider,
		searches: searches,
		cache:    cache,
	}
}

// Search resolves current conditions for a city on behalf of an account and
// appends the lookup to the shared search history.
//
// # Flow
//  1. Try the Redis cache. Cache failures are logged and ignored: a cache
//     outage degrades to provider calls, it never fails a lookup.
//  2. On miss, call the provider and cache the fresh payload.
//  3. Record the search for the authenticated account. Every search is
//     recorded, cached or not, so the history reflects what users actually
//     looked up.
func (service *Service) Search(ctx context.Context, accountID int64, city string) ([]byte, error) {
	log := ctxutil.GetLogger(ctx)

	// ── 1. Cache Probe ────────────────────────────────────────────────────

	payload, err := service.cache.Get(ctx, city)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			log.WarnContext(ctx, "weather_cache_read_failed", slog.Any("error", err))
		}

		// ── 2. Provider Fetch ─────────────────────────────────────────────

		payload, err = service.provider.CurrentByCity(ctx, city)
		if err != nil {
			return nil, err
		}

		if cacheErr := service.cache.Set(ctx, city, payload); cacheErr != nil {
			log.WarnContext(ctx, "weather_cache_write_failed", slog.Any("error", cacheErr))
		}
	}

	// ── 3. History Record ─────────────────────────────────────────────────

	search := &Search{
		AccountID: accountID,
		City:      city,
		Payload:   payload,
	}
	if err := service.searches.Insert(ctx, search); err != nil {
		return nil, err
	}

	return payload, nil
}
