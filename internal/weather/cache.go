// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package weather

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phamduc/skyreport/internal/platform/constants"
)

// PayloadCacheTTL is how long a provider payload stays cached per city.
// Current conditions change slowly; ten minutes keeps repeated searches for
// popular cities off the metered provider API.
const PayloadCacheTTL = 10 * time.Minute

// ErrCacheMiss is returned when no payload is cached for a city.
var ErrCacheMiss = errors.New("weather: cache miss")

// RedisPayloadCache caches provider payloads in Redis, keyed by city.
type RedisPayloadCache struct {
	client *redis.Client
}

// NewPayloadCache creates a Redis-backed payload cache.
func NewPayloadCache(client *redis.Client) *RedisPayloadCache {
	return &RedisPayloadCache{client: client}
}

// cacheKey normalizes the city so "London" and "london" share an entry.
func cacheKey(city string) string {
	return constants.RedisPrefixWeather + strings.ToLower(strings.TrimSpace(city))
}

// Get returns the cached payload for a city, or [ErrCacheMiss].
func (cache *RedisPayloadCache) Get(ctx context.Context, city string) ([]byte, error) {
	payload, err := cache.client.Get(ctx, cacheKey(city)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return payload, nil
}

// Set stores a payload for a city with the standard TTL.
func (cache *RedisPayloadCache) Set(ctx context.Context, city string, payload []byte) error {
	return cache.client.Set(ctx, cacheKey(city), payload, PayloadCacheTTL).Err()
}
