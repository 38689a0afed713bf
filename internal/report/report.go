// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

// Package report implements the shared search-history listing: every weather
// lookup ever performed, joined with the username that performed it.
package report

import (
	"encoding/json"
	"time"
)

// Entry is one row of the shared history report.
type Entry struct {
	Username  string          `json:"username"`
	City      string          `json:"city"`
	Payload   json.RawMessage `json:"weather_info"`
	CreatedAt time.Time       `json:"created_at"`
}
