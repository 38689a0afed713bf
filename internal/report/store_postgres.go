// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package report

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamduc/skyreport/internal/platform/apperr"
)

// PostgresEntryRepository implements the EntryRepository interface using pgx.
type PostgresEntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new PostgreSQL implementation of the EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *PostgresEntryRepository {
	return &PostgresEntryRepository{pool: pool}
}

// List returns one page of history entries joined with usernames.
func (repository *PostgresEntryRepository) List(ctx context.Context, limit, offset int) ([]Entry, int, error) {
	const countQuery = `SELECT COUNT(*) FROM weather_search`

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, apperr.Store(err)
	}

	const listQuery = `
		SELECT a.username, w.city, w.payload, w.created_at
		FROM weather_search w
		JOIN account a ON w.account_id = a.id
		ORDER BY w.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := repository.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		return nil, 0, apperr.Store(err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.Username, &entry.City, &entry.Payload, &entry.CreatedAt); err != nil {
			return nil, 0, apperr.Store(err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, apperr.Store(err)
	}

	return entries, total, nil
}
