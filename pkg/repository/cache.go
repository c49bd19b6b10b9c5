package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// CacheRepository is the persisted key-value store with expiry used by
// metadata lookups. Entries are keyed by (operation kind, normalized query)
// and survive across runs until they expire or get purged.
type CacheRepository struct {
	db *sqlx.DB
}

// NewCacheRepository creates a new cache repository
func NewCacheRepository(db *sqlx.DB) *CacheRepository {
	return &CacheRepository{db: db}
}

// Get returns the cached payload for the key. An expired entry is a miss,
// never served to the caller.
func (r *CacheRepository) Get(ctx context.Context, kind, query string) (payload []byte, ok bool, err error) {
	var row struct {
		Payload   []byte    `db:"payload"`
		ExpiresAt time.Time `db:"expires_at"`
	}
	err = r.db.GetContext(ctx, &row,
		"SELECT payload, expires_at FROM cache_entries WHERE kind = ? AND query = ?", kind, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cache entry: %w", err)
	}
	if time.Now().After(row.ExpiresAt) {
		return nil, false, nil
	}
	return row.Payload, true, nil
}

// Set stores a payload under the key with the given TTL, replacing any
// previous entry
func (r *CacheRepository) Set(ctx context.Context, kind, query string, payload []byte, ttl time.Duration) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		stmt := `
			INSERT INTO cache_entries (kind, query, payload, expires_at) VALUES (?, ?, ?, ?)
			ON CONFLICT(kind, query) DO UPDATE SET
			    payload = excluded.payload,
			    expires_at = excluded.expires_at,
			    created_at = CURRENT_TIMESTAMP
		`
		_, err := r.db.ExecContext(ctx, stmt, kind, query, payload, time.Now().Add(ttl))
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set cache entry: %w", err)}
		}
		return nil
	})
}

// Purge deletes expired entries, returns the number removed
func (r *CacheRepository) Purge(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM cache_entries WHERE expires_at < ?", time.Now())
	if err != nil {
		return 0, fmt.Errorf("purge cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge cache rows affected: %w", err)
	}
	return n, nil
}
