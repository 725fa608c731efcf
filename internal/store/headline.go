package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// HeadlineRepo persists the most recent headline pool. It satisfies
// the headline source's Cache interface. A single row is kept: the
// pool is a unit, not a history.
type HeadlineRepo struct {
	db *sql.DB
}

// SaveHeadlines replaces the cached pool with the given one.
func (r *HeadlineRepo) SaveHeadlines(ctx context.Context, headlines []string) error {
	encoded, err := json.Marshal(headlines)
	if err != nil {
		return fmt.Errorf("encode headlines: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO headline_cache (id, fetched_at, headlines)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			fetched_at = excluded.fetched_at,
			headlines = excluded.headlines`,
		time.Now().UTC().Format(time.RFC3339), string(encoded),
	)
	if err != nil {
		return fmt.Errorf("save headline cache: %w", err)
	}
	return nil
}

// LoadHeadlines returns the cached pool and its fetch time, or an
// empty pool when nothing is cached.
func (r *HeadlineRepo) LoadHeadlines(ctx context.Context) ([]string, time.Time, error) {
	var fetchedAt, encoded string
	err := r.db.QueryRowContext(ctx, `
		SELECT fetched_at, headlines FROM headline_cache WHERE id = 1`,
	).Scan(&fetchedAt, &encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("load headline cache: %w", err)
	}

	var headlines []string
	if err := json.Unmarshal([]byte(encoded), &headlines); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode headlines: %w", err)
	}

	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parse fetched_at: %w", err)
	}
	return headlines, t, nil
}
