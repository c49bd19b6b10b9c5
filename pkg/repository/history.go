package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/reelscope/pkg/domain"
)

// RunRepository keeps the curation run history
type RunRepository struct {
	db *sqlx.DB
}

// NewRunRepository creates a new run history repository
func NewRunRepository(db *sqlx.DB) *RunRepository {
	return &RunRepository{db: db}
}

// runRow maps the runs table
type runRow struct {
	ID             int64     `db:"id"`
	Theme          string    `db:"theme"`
	CollectionName string    `db:"collection_name"`
	Status         string    `db:"status"`
	MatchedCount   int       `db:"matched_count"`
	UnmatchedCount int       `db:"unmatched_count"`
	AddedCount     int       `db:"added_count"`
	AlreadyPresent int       `db:"already_present"`
	FailedAddCount int       `db:"failed_add_count"`
	CollectionSize int       `db:"collection_size"`
	Error          string    `db:"error"`
	StartedAt      time.Time `db:"started_at"`
	ElapsedMs      int64     `db:"elapsed_ms"`
}

func (r runRow) toDomain() domain.RunResult {
	return domain.RunResult{
		Theme:          r.Theme,
		Collection:     r.CollectionName,
		Status:         domain.RunStatus(r.Status),
		MatchedCount:   r.MatchedCount,
		UnmatchedCount: r.UnmatchedCount,
		AddedCount:     r.AddedCount,
		AlreadyPresent: r.AlreadyPresent,
		FailedAddCount: r.FailedAddCount,
		CollectionSize: r.CollectionSize,
		Error:          r.Error,
		Started:        r.StartedAt,
		Elapsed:        time.Duration(r.ElapsedMs) * time.Millisecond,
	}
}

// Record stores a completed run result
func (r *RunRepository) Record(ctx context.Context, res domain.RunResult) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		stmt := `
			INSERT INTO runs (theme, collection_name, status, matched_count, unmatched_count,
			                  added_count, already_present, failed_add_count, collection_size,
			                  error, started_at, elapsed_ms)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		_, err := r.db.ExecContext(ctx, stmt, res.Theme, res.Collection, string(res.Status),
			res.MatchedCount, res.UnmatchedCount, res.AddedCount, res.AlreadyPresent,
			res.FailedAddCount, res.CollectionSize, res.Error, res.Started, res.Elapsed.Milliseconds())
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("record run: %w", err)}
		}
		return nil
	})
}

// LastRuns returns the most recent runs across all themes
func (r *RunRepository) LastRuns(ctx context.Context, limit int) ([]domain.RunResult, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []runRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM runs ORDER BY started_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("get last runs: %w", err)
	}

	results := make([]domain.RunResult, len(rows))
	for i, row := range rows {
		results[i] = row.toDomain()
	}
	return results, nil
}

// LastRunByTheme returns the most recent run for a theme, nil when the theme
// never ran
func (r *RunRepository) LastRunByTheme(ctx context.Context, theme string) (*domain.RunResult, error) {
	var row runRow
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM runs WHERE theme = ? ORDER BY started_at DESC, id DESC LIMIT 1", theme)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last run for %s: %w", theme, err)
	}
	res := row.toDomain()
	return &res, nil
}

// LastSuccessByTheme returns the start time of the last successful or
// partial run for a theme, zero time when none
func (r *RunRepository) LastSuccessByTheme(ctx context.Context, theme string) (time.Time, error) {
	var started time.Time
	err := r.db.GetContext(ctx, &started,
		"SELECT started_at FROM runs WHERE theme = ? AND status IN ('success', 'partial') ORDER BY started_at DESC LIMIT 1", theme)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("get last success for %s: %w", theme, err)
	}
	return started, nil
}
