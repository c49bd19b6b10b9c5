package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/reelscope/pkg/domain"
)

func setupRepos(t *testing.T) *Repositories {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}
	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func TestRepositories_Integration(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Ping(ctx))

	t.Run("cache operations", func(t *testing.T) {
		// miss on empty store
		_, ok, err := repos.Cache.Get(ctx, "search", "horror")
		require.NoError(t, err)
		assert.False(t, ok)

		// set and hit
		require.NoError(t, repos.Cache.Set(ctx, "search", "horror", []byte(`[{"id":1}]`), time.Minute))
		payload, ok, err := repos.Cache.Get(ctx, "search", "horror")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte(`[{"id":1}]`), payload)

		// different kind is a separate key
		_, ok, err = repos.Cache.Get(ctx, "lookup", "horror")
		require.NoError(t, err)
		assert.False(t, ok)

		// overwrite replaces payload
		require.NoError(t, repos.Cache.Set(ctx, "search", "horror", []byte(`[{"id":2}]`), time.Minute))
		payload, ok, err = repos.Cache.Get(ctx, "search", "horror")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte(`[{"id":2}]`), payload)
	})

	t.Run("run history", func(t *testing.T) {
		res := domain.RunResult{
			Theme:          "october",
			Collection:     "Halloween Frights",
			Status:         domain.StatusSuccess,
			MatchedCount:   12,
			UnmatchedCount: 3,
			AddedCount:     5,
			AlreadyPresent: 7,
			CollectionSize: 12,
			Started:        time.Now().Add(-time.Minute),
			Elapsed:        42 * time.Second,
		}
		require.NoError(t, repos.Run.Record(ctx, res))

		last, err := repos.Run.LastRunByTheme(ctx, "october")
		require.NoError(t, err)
		require.NotNil(t, last)
		assert.Equal(t, domain.StatusSuccess, last.Status)
		assert.Equal(t, 12, last.MatchedCount)
		assert.Equal(t, 42*time.Second, last.Elapsed)

		none, err := repos.Run.LastRunByTheme(ctx, "never-ran")
		require.NoError(t, err)
		assert.Nil(t, none)

		runs, err := repos.Run.LastRuns(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, runs, 1)
	})
}

func TestCacheRepository_Expiry(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Cache.Set(ctx, "search", "noir", []byte("data"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	// expired entry is never served
	_, ok, err := repos.Cache.Get(ctx, "search", "noir")
	require.NoError(t, err)
	assert.False(t, ok)

	// and purge removes it
	n, err := repos.Cache.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRunRepository_LastSuccessByTheme(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	got, err := repos.Run.LastSuccessByTheme(ctx, "october")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	failedAt := time.Now().Add(-2 * time.Hour)
	okAt := time.Now().Add(-time.Hour)
	require.NoError(t, repos.Run.Record(ctx, domain.RunResult{Theme: "october", Status: domain.StatusFailed, Started: failedAt}))
	require.NoError(t, repos.Run.Record(ctx, domain.RunResult{Theme: "october", Status: domain.StatusPartial, Started: okAt}))

	got, err = repos.Run.LastSuccessByTheme(ctx, "october")
	require.NoError(t, err)
	assert.WithinDuration(t, okAt, got, time.Second, "failed runs don't count")
}
