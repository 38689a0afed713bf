// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package auth

import "time"

// # Session Constraints

const (
	// SessionTokenTTL is the fixed lifetime of an issued session token.
	// A token issued at time T stops being accepted at exactly T + 3h; with
	// no server-side session record there is no way to revoke it earlier.
	SessionTokenTTL = 3 * time.Hour
)
