// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package report

import (
	"context"
)

// EntryRepository defines the read-side contract for the history report.
type EntryRepository interface {
	// List returns one page of history entries, newest first, along with
	// the total number of entries for pagination metadata.
	List(ctx context.Context, limit, offset int) ([]Entry, int, error)
}
