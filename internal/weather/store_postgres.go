// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package weather

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamduc/skyreport/internal/platform/apperr"
)

// PostgresSearchRepository implements the SearchRepository interface using pgx.
type PostgresSearchRepository struct {
	pool *pgxpool.Pool
}

// NewSearchRepository creates a new PostgreSQL implementation of the SearchRepository.
func NewSearchRepository(pool *pgxpool.Pool) *PostgresSearchRepository {
	return &PostgresSearchRepository{pool: pool}
}

// Insert persists a new search row and fills in the store-assigned ID.
func (repository *PostgresSearchRepository) Insert(ctx context.Context, search *Search) error {
	const query = `
		INSERT INTO weather_search (account_id, city, payload, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	if search.CreatedAt.IsZero() {
		search.CreatedAt = time.Now()
	}

	err := repository.pool.QueryRow(ctx, query,
		search.AccountID,
		search.City,
		search.Payload,
		search.CreatedAt,
	).Scan(&search.ID)

	if err != nil {
		return apperr.Store(err)
	}

	return nil
}
