// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

// Package weather implements the city weather lookup: a thin proxy over the
// third-party provider, plus the persisted record of every search.
//
// # Architecture
//
// The auth subsystem protects this package but the package never re-checks
// credentials itself: handlers receive an already-authenticated account ID
// from the request context and trust it for the request's duration.
package weather

import (
	"encoding/json"
	"time"
)

// Search is one persisted weather lookup performed by an account.
//
// Payload stores the provider's response document verbatim so the shared
// history can replay exactly what the user saw at search time.
type Search struct {
	ID        int64           `json:"id"`
	AccountID int64           `json:"account_id"`
	City      string          `json:"city"`
	Payload   json.RawMessage `json:"weather_info"`
	CreatedAt time.Time       `json:"created_at"`
}
