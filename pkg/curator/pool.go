package curator

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/reelscope/pkg/domain"
)

// buildPool gathers the keyword candidate pool. Keywords are searched in
// parallel with a bounded worker group, each one served cache-first. A
// failing keyword is logged and contributes nothing, the pool is built
// from whatever succeeded. Returns the pool sorted by rating descending
// and the number of failed keywords.
func (c *Curator) buildPool(ctx context.Context, keywords []string) ([]domain.Candidate, int) {
	var (
		mu       sync.Mutex
		merged   = map[int64]domain.Candidate{}
		failures int
	)

	g := &errgroup.Group{}
	g.SetLimit(c.workers())

	for _, keyword := range keywords {
		g.Go(func() error {
			candidates, err := c.searchKeyword(ctx, keyword)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				lgr.Printf("[WARN] keyword %q failed: %v", keyword, err)
				failures++
				return nil
			}
			for _, cand := range candidates {
				if prev, ok := merged[cand.ID]; ok && prev.Rating >= cand.Rating {
					continue
				}
				merged[cand.ID] = cand
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, failures are counted

	pool := make([]domain.Candidate, 0, len(merged))
	for _, cand := range merged {
		pool = append(pool, cand)
	}
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].Rating != pool[j].Rating {
			return pool[i].Rating > pool[j].Rating
		}
		return pool[i].ID < pool[j].ID
	})

	if max := c.params.PoolSize; max > 0 && len(pool) > max {
		pool = pool[:max] // sorted by rating, the cap keeps the best
	}
	return pool, failures
}

// searchKeyword resolves one keyword to candidates, cache-aside with
// singleflight so concurrent runs share one live request per keyword
func (c *Curator) searchKeyword(ctx context.Context, keyword string) ([]domain.Candidate, error) {
	v, err, _ := c.sf.Do("search:"+keyword, func() (interface{}, error) {
		if payload, ok, err := c.cache.Get(ctx, "search", keyword); err == nil && ok {
			var cached []domain.Candidate
			if err := json.Unmarshal(payload, &cached); err == nil {
				return cached, nil
			}
			lgr.Printf("[WARN] corrupt cache entry for search %q, refetching", keyword)
		}

		candidates, err := c.metadata.Search(ctx, keyword)
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", keyword, err)
		}

		if payload, err := json.Marshal(candidates); err == nil {
			if err := c.cache.Set(ctx, "search", keyword, payload, c.params.CacheTTL); err != nil {
				lgr.Printf("[WARN] failed to cache search %q: %v", keyword, err)
			}
		}
		return candidates, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Candidate), nil
}
