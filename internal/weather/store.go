// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package weather

import (
	"context"
)

// SearchRepository defines the data access contract for persisted searches.
type SearchRepository interface {
	// Insert records a completed weather lookup for an account.
	// The write is a single atomic row; a reader never observes a
	// partially-applied search record.
	Insert(ctx context.Context, search *Search) error
}
