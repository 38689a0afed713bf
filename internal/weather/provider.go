// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/phamduc/skyreport/internal/platform/apperr"
)

// providerTimeout bounds the round-trip to the upstream weather API so a
// slow provider cannot pin request handlers past their own deadline.
const providerTimeout = 10 * time.Second

// maxProviderPayload caps how much of the provider response is read into
// memory. Current-conditions documents are a few KB; anything larger is
// a misbehaving upstream.
const maxProviderPayload = 1 << 20

// HTTPProvider fetches current conditions from a Weatherstack-compatible API.
//
// # Error Contract
//
// The upstream reports domain failures (unknown city, bad key) inside a 200
// response as {"success": false, "error": {"info": ...}}, so the client must
// inspect the document rather than the status code alone.
type HTTPProvider struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
}

// NewHTTPProvider constructs a provider client for the given endpoint and key.
func NewHTTPProvider(baseURL, accessKey string) *HTTPProvider {
	return &HTTPProvider{
		httpClient: &http.Client{Timeout: providerTimeout},
		baseURL:    baseURL,
		accessKey:  accessKey,
	}
}

// providerError mirrors the upstream's embedded failure document.
type providerError struct {
	Success *bool `json:"success"`
	Error   struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// CurrentByCity fetches the current-conditions document for a city.
//
// # Returns
//   - The provider's JSON payload verbatim on success.
//   - [apperr.BadRequest] carrying the provider's own message when the
//     upstream rejected the query (e.g. unknown city).
//   - [apperr.Internal] for transport-level failures.
func (provider *HTTPProvider) CurrentByCity(ctx context.Context, city string) ([]byte, error) {
	// ── 1. Request Construction ───────────────────────────────────────────

	query := url.Values{}
	query.Set("access_key", provider.accessKey)
	query.Set("query", city)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, provider.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("weather_provider_request_failed: %w", err))
	}

	// ── 2. Upstream Call ──────────────────────────────────────────────────

	response, err := provider.httpClient.Do(request)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("weather_provider_call_failed: %w", err))
	}
	defer func() { _ = response.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxProviderPayload))
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("weather_provider_read_failed: %w", err))
	}

	if response.StatusCode != http.StatusOK {
		return nil, apperr.Internal(fmt.Errorf("weather_provider_status: %d", response.StatusCode))
	}

	// ── 3. Embedded Failure Detection ─────────────────────────────────────

	var failure providerError
	if err := json.Unmarshal(payload, &failure); err != nil {
		return nil, apperr.Internal(fmt.Errorf("weather_provider_decode_failed: %w", err))
	}
	if failure.Success != nil && !*failure.Success {
		return nil, apperr.BadRequest(failure.Error.Info)
	}

	return payload, nil
}
