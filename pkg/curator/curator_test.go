package curator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/reelscope/pkg/config"
	"github.com/umputun/reelscope/pkg/curator/mocks"
	"github.com/umputun/reelscope/pkg/domain"
	"github.com/umputun/reelscope/pkg/library"
)

type fixture struct {
	meta    *mocks.MetadataServiceMock
	lib     *mocks.LibraryServiceMock
	sug     *mocks.SuggesterServiceMock
	cache   *mocks.CacheStoreMock
	history *mocks.HistoryStoreMock
	dir     string
}

// newFixture builds a curator over pass-through mocks: empty cache,
// accepting history, no AI suggestions
func newFixture(t *testing.T) (*Curator, *fixture) {
	t.Helper()
	f := &fixture{
		meta: &mocks.MetadataServiceMock{},
		lib:  &mocks.LibraryServiceMock{},
		sug: &mocks.SuggesterServiceMock{
			SuggestFunc: func(ctx context.Context, prompt string, max int) ([]domain.Suggestion, error) {
				return nil, nil
			},
		},
		cache: &mocks.CacheStoreMock{
			GetFunc: func(ctx context.Context, kind, query string) ([]byte, bool, error) { return nil, false, nil },
			SetFunc: func(ctx context.Context, kind, query string, payload []byte, ttl time.Duration) error {
				return nil
			},
		},
		history: &mocks.HistoryStoreMock{
			RecordFunc: func(ctx context.Context, res domain.RunResult) error { return nil },
		},
		dir: t.TempDir(),
	}

	params := config.EngineConfig{
		MaxWorkers:     4,
		PoolSize:       1000,
		MaxSuggestions: 10,
		MaxItems:       15,
		RunTimeout:     time.Minute,
		CacheTTL:       time.Hour,
		FuzzyThreshold: 0.85,
	}
	return NewCurator(f.meta, f.lib, f.sug, f.cache, f.history, f.dir, params), f
}

func writeTheme(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))
}

func TestCurator_Run_CreatesCollection(t *testing.T) {
	c, f := newFixture(t)
	writeTheme(t, f.dir, "october", "collection_name: Halloween Frights\nkeywords: [halloween]\n")

	f.meta.SearchFunc = func(ctx context.Context, keyword string) ([]domain.Candidate, error) {
		assert.Equal(t, "halloween", keyword)
		return []domain.Candidate{
			{ID: 1, Title: "Halloween", Year: 1978, Rating: 7.7},
			{ID: 2, Title: "The Shining", Year: 1980, Rating: 8.4},
			{ID: 3, Title: "Not In Library", Year: 2001, Rating: 9.9},
		}, nil
	}
	f.lib.MoviesFunc = func(ctx context.Context) ([]library.Entry, error) {
		return []library.Entry{
			{Key: "101", Title: "The Shining", Year: 1980, Rating: 8.4},
			{Key: "102", Title: "Halloween", Year: 1978, Rating: 7.7},
		}, nil
	}
	f.lib.GetCollectionFunc = func(ctx context.Context, name string) (*domain.Collection, error) { return nil, nil }
	f.lib.CreateCollectionFunc = func(ctx context.Context, name string, keys []string) error { return nil }

	res, err := c.Run(context.Background(), "october")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSuccess, res.Status)
	assert.Equal(t, "Halloween Frights", res.Collection)
	assert.Equal(t, 2, res.MatchedCount)
	assert.Equal(t, 1, res.UnmatchedCount)
	assert.Equal(t, 2, res.AddedCount)
	assert.Equal(t, 2, res.CollectionSize)

	created := f.lib.CreateCollectionCalls()
	require.Len(t, created, 1)
	assert.Equal(t, "Halloween Frights", created[0].Name)
	assert.Equal(t, []string{"101", "102"}, created[0].Keys, "rating order, best first")
	assert.Empty(t, f.lib.SetPromotedCalls(), "promote not requested")

	recorded := f.history.RecordCalls()
	require.Len(t, recorded, 1)
	assert.Equal(t, domain.StatusSuccess, recorded[0].Res.Status)
}

func TestCurator_Run_AIMatchesComeFirst(t *testing.T) {
	c, f := newFixture(t)
	writeTheme(t, f.dir, "slow-burn", `
collection_name: Slow Burn Horror
keywords: [haunting]
use_ai: true
ai_prompt: atmospheric slow-burn horror
`)

	f.sug.SuggestFunc = func(ctx context.Context, prompt string, max int) ([]domain.Suggestion, error) {
		assert.Equal(t, "atmospheric slow-burn horror", prompt)
		return []domain.Suggestion{{Title: "The Witch", Year: 2015}}, nil
	}
	f.meta.LookupFunc = func(ctx context.Context, title string, year int) (*domain.Candidate, error) {
		return &domain.Candidate{ID: 10, Title: "The Witch", Year: 2015, Rating: 6.9}, nil
	}
	f.meta.SearchFunc = func(ctx context.Context, keyword string) ([]domain.Candidate, error) {
		return []domain.Candidate{{ID: 20, Title: "The Haunting", Year: 1963, Rating: 7.5}}, nil
	}
	f.lib.MoviesFunc = func(ctx context.Context) ([]library.Entry, error) {
		return []library.Entry{
			{Key: "201", Title: "The Witch", Year: 2015, Rating: 6.9},
			{Key: "202", Title: "The Haunting", Year: 1963, Rating: 7.5},
		}, nil
	}
	f.lib.GetCollectionFunc = func(ctx context.Context, name string) (*domain.Collection, error) { return nil, nil }
	f.lib.CreateCollectionFunc = func(ctx context.Context, name string, keys []string) error { return nil }

	res, err := c.Run(context.Background(), "slow-burn")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, res.Status)

	created := f.lib.CreateCollectionCalls()
	require.Len(t, created, 1)
	assert.Equal(t, []string{"201", "202"}, created[0].Keys, "lower-rated AI pick still leads")
}

func TestCurator_Run_AlreadyRunning(t *testing.T) {
	c, f := newFixture(t)
	writeTheme(t, f.dir, "october", "collection_name: Halloween Frights\nkeywords: [halloween]\n")

	var once sync.Once
	entered := make(chan struct{})
	release := make(chan struct{})
	f.meta.SearchFunc = func(ctx context.Context, keyword string) ([]domain.Candidate, error) {
		once.Do(func() { close(entered) })
		<-release
		return nil, nil
	}
	f.lib.MoviesFunc = func(ctx context.Context) ([]library.Entry, error) { return nil, nil }
	f.lib.GetCollectionFunc = func(ctx context.Context, name string) (*domain.Collection, error) { return nil, nil }
	f.lib.CreateCollectionFunc = func(ctx context.Context, name string, keys []string) error { return nil }

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := c.Run(context.Background(), "october")
		assert.NoError(t, err)
	}()

	<-entered // first run holds the theme lock now

	res, err := c.Run(context.Background(), "october")
	require.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Equal(t, domain.StatusAlreadyRunning, res.Status)
	assert.Empty(t, f.lib.CreateCollectionCalls(), "rejected run touches nothing")
	assert.Empty(t, f.lib.AddItemCalls())

	close(release)
	wg.Wait()

	// lock released, the theme runs again
	_, err = c.Run(context.Background(), "october")
	require.NoError(t, err)
}

func TestCurator_Run_PartialKeywordFailures(t *testing.T) {
	c, f := newFixture(t)
	writeTheme(t, f.dir, "mixed", "collection_name: Mixed Bag\nkeywords: [k1, k2, k3, k4, k5]\n")

	f.meta.SearchFunc = func(ctx context.Context, keyword string) ([]domain.Candidate, error) {
		switch keyword {
		case "k2", "k4":
			return nil, errors.New("upstream timeout")
		case "k1":
			return []domain.Candidate{{ID: 1, Title: "Alpha", Year: 2000, Rating: 7}}, nil
		case "k3":
			return []domain.Candidate{{ID: 2, Title: "Beta", Year: 2001, Rating: 6}}, nil
		default:
			return []domain.Candidate{{ID: 3, Title: "Gamma", Year: 2002, Rating: 5}}, nil
		}
	}
	f.lib.MoviesFunc = func(ctx context.Context) ([]library.Entry, error) {
		return []library.Entry{
			{Key: "1", Title: "Alpha", Year: 2000},
			{Key: "2", Title: "Beta", Year: 2001},
			{Key: "3", Title: "Gamma", Year: 2002},
		}, nil
	}
	f.lib.GetCollectionFunc = func(ctx context.Context, name string) (*domain.Collection, error) { return nil, nil }
	f.lib.CreateCollectionFunc = func(ctx context.Context, name string, keys []string) error { return nil }

	res, err := c.Run(context.Background(), "mixed")
	require.NoError(t, err, "failing keywords don't fail the run")

	assert.Equal(t, domain.StatusPartial, res.Status)
	assert.Equal(t, 3, res.MatchedCount, "pool built from surviving keywords")
	created := f.lib.CreateCollectionCalls()
	require.Len(t, created, 1)
	assert.Len(t, created[0].Keys, 3)
}

func TestCurator_Run_LibraryUnreachable(t *testing.T) {
	c, f := newFixture(t)
	writeTheme(t, f.dir, "october", "collection_name: Halloween Frights\nkeywords: [halloween]\n")

	f.meta.SearchFunc = func(ctx context.Context, keyword string) ([]domain.Candidate, error) {
		return []domain.Candidate{{ID: 1, Title: "Halloween", Year: 1978, Rating: 7.7}}, nil
	}
	f.lib.MoviesFunc = func(ctx context.Context) ([]library.Entry, error) {
		return nil, errors.New("connection refused")
	}

	res, err := c.Run(context.Background(), "october")
	require.Error(t, err)
	assert.Equal(t, domain.StatusFailed, res.Status)
	assert.Contains(t, res.Error, "connection refused")
	assert.Empty(t, f.lib.GetCollectionCalls(), "no sync attempted")
}

func TestCurator_Run_ThemeNotFound(t *testing.T) {
	c, f := newFixture(t)

	res, err := c.Run(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, domain.StatusFailed, res.Status)

	recorded := f.history.RecordCalls()
	require.Len(t, recorded, 1)
	assert.Equal(t, domain.StatusFailed, recorded[0].Res.Status)
}

func TestCurator_Run_IdempotentRerun(t *testing.T) {
	c, f := newFixture(t)
	writeTheme(t, f.dir, "october", "collection_name: Halloween Frights\nkeywords: [halloween]\npromote: true\n")

	f.meta.SearchFunc = func(ctx context.Context, keyword string) ([]domain.Candidate, error) {
		return []domain.Candidate{
			{ID: 1, Title: "Halloween", Year: 1978, Rating: 7.7},
			{ID: 2, Title: "The Shining", Year: 1980, Rating: 8.4},
		}, nil
	}
	f.lib.MoviesFunc = func(ctx context.Context) ([]library.Entry, error) {
		return []library.Entry{
			{Key: "101", Title: "The Shining", Year: 1980, Rating: 8.4},
			{Key: "102", Title: "Halloween", Year: 1978, Rating: 7.7},
		}, nil
	}
	f.lib.GetCollectionFunc = func(ctx context.Context, name string) (*domain.Collection, error) {
		// stale member 999 stays untouched
		return &domain.Collection{Name: name, Keys: []string{"101", "102", "999"}}, nil
	}
	f.lib.SetPromotedFunc = func(ctx context.Context, name string, promoted bool) error { return nil }

	res, err := c.Run(context.Background(), "october")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSuccess, res.Status)
	assert.Equal(t, 0, res.AddedCount)
	assert.Equal(t, 2, res.AlreadyPresent)
	assert.Equal(t, 3, res.CollectionSize, "stale members never removed")
	assert.Empty(t, f.lib.AddItemCalls())
	assert.Empty(t, f.lib.CreateCollectionCalls())

	promoted := f.lib.SetPromotedCalls()
	require.Len(t, promoted, 1)
	assert.True(t, promoted[0].Promoted)
}

func TestCurator_Run_AddFailureIsPartial(t *testing.T) {
	c, f := newFixture(t)
	writeTheme(t, f.dir, "october", "collection_name: Halloween Frights\nkeywords: [halloween]\n")

	f.meta.SearchFunc = func(ctx context.Context, keyword string) ([]domain.Candidate, error) {
		return []domain.Candidate{
			{ID: 1, Title: "Halloween", Year: 1978, Rating: 7.7},
			{ID: 2, Title: "The Shining", Year: 1980, Rating: 8.4},
		}, nil
	}
	f.lib.MoviesFunc = func(ctx context.Context) ([]library.Entry, error) {
		return []library.Entry{
			{Key: "101", Title: "The Shining", Year: 1980, Rating: 8.4},
			{Key: "102", Title: "Halloween", Year: 1978, Rating: 7.7},
		}, nil
	}
	f.lib.GetCollectionFunc = func(ctx context.Context, name string) (*domain.Collection, error) {
		return &domain.Collection{Name: name, Keys: []string{}}, nil
	}
	f.lib.AddItemFunc = func(ctx context.Context, name, key string) error {
		if key == "102" {
			return errors.New("server error")
		}
		return nil
	}

	res, err := c.Run(context.Background(), "october")
	require.NoError(t, err, "per-item failures don't fail the run")

	assert.Equal(t, domain.StatusPartial, res.Status)
	assert.Equal(t, 1, res.AddedCount)
	assert.Equal(t, 1, res.FailedAddCount)

	// failed item was retried once, successful one called once
	calls := f.lib.AddItemCalls()
	attempts := map[string]int{}
	for _, call := range calls {
		attempts[call.Key]++
	}
	assert.Equal(t, 1, attempts["101"])
	assert.Equal(t, 2, attempts["102"])
}

func TestCurator_Run_CreateFailureIsFatal(t *testing.T) {
	c, f := newFixture(t)
	writeTheme(t, f.dir, "october", "collection_name: Halloween Frights\nkeywords: [halloween]\n")

	f.meta.SearchFunc = func(ctx context.Context, keyword string) ([]domain.Candidate, error) {
		return []domain.Candidate{{ID: 1, Title: "Halloween", Year: 1978, Rating: 7.7}}, nil
	}
	f.lib.MoviesFunc = func(ctx context.Context) ([]library.Entry, error) {
		return []library.Entry{{Key: "102", Title: "Halloween", Year: 1978, Rating: 7.7}}, nil
	}
	f.lib.GetCollectionFunc = func(ctx context.Context, name string) (*domain.Collection, error) { return nil, nil }
	f.lib.CreateCollectionFunc = func(ctx context.Context, name string, keys []string) error {
		return errors.New("quota exceeded")
	}

	res, err := c.Run(context.Background(), "october")
	require.Error(t, err)
	assert.Equal(t, domain.StatusFailed, res.Status)
	assert.Contains(t, res.Error, "quota exceeded")
}

func TestCurator_Run_AIFailureDegradesToKeywords(t *testing.T) {
	c, f := newFixture(t)
	writeTheme(t, f.dir, "ai-down", `
collection_name: AI Down
keywords: [halloween]
use_ai: true
ai_prompt: whatever
`)

	f.sug.SuggestFunc = func(ctx context.Context, prompt string, max int) ([]domain.Suggestion, error) {
		return nil, errors.New("model overloaded")
	}
	f.meta.SearchFunc = func(ctx context.Context, keyword string) ([]domain.Candidate, error) {
		return []domain.Candidate{{ID: 1, Title: "Halloween", Year: 1978, Rating: 7.7}}, nil
	}
	f.lib.MoviesFunc = func(ctx context.Context) ([]library.Entry, error) {
		return []library.Entry{{Key: "102", Title: "Halloween", Year: 1978, Rating: 7.7}}, nil
	}
	f.lib.GetCollectionFunc = func(ctx context.Context, name string) (*domain.Collection, error) { return nil, nil }
	f.lib.CreateCollectionFunc = func(ctx context.Context, name string, keys []string) error { return nil }

	res, err := c.Run(context.Background(), "ai-down")
	require.NoError(t, err, "suggester failure falls back to the keyword pool")

	assert.Equal(t, domain.StatusPartial, res.Status)
	assert.Equal(t, 1, res.AddedCount)
	assert.Empty(t, f.meta.LookupCalls(), "nothing to resolve without suggestions")
}

func TestCurator_RunAll(t *testing.T) {
	c, f := newFixture(t)
	writeTheme(t, f.dir, "alpha", "collection_name: Alpha\nkeywords: [alpha]\n")
	writeTheme(t, f.dir, "beta", "collection_name: Beta\nkeywords: [beta]\n")

	f.meta.SearchFunc = func(ctx context.Context, keyword string) ([]domain.Candidate, error) {
		return []domain.Candidate{{ID: 1, Title: "Alpha Movie", Year: 2000, Rating: 7}}, nil
	}
	f.lib.MoviesFunc = func(ctx context.Context) ([]library.Entry, error) {
		return []library.Entry{{Key: "1", Title: "Alpha Movie", Year: 2000}}, nil
	}
	f.lib.GetCollectionFunc = func(ctx context.Context, name string) (*domain.Collection, error) { return nil, nil }
	f.lib.CreateCollectionFunc = func(ctx context.Context, name string, keys []string) error { return nil }

	results, err := c.RunAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "alpha", results[0].Theme)
	assert.Equal(t, "beta", results[1].Theme)
	for _, res := range results {
		assert.NotEqual(t, domain.StatusFailed, res.Status)
	}
}

func TestCurator_Themes(t *testing.T) {
	c, f := newFixture(t)
	for i := range 3 {
		writeTheme(t, f.dir, fmt.Sprintf("theme-%d", i), "collection_name: X\nkeywords: [x]\n")
	}
	specs, err := c.Themes()
	require.NoError(t, err)
	assert.Len(t, specs, 3)
}
