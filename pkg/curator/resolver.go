package curator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/reelscope/pkg/domain"
)

// resolveSuggestions turns AI suggestions into canonical metadata
// candidates. Lookups run in a bounded group but the result keeps the
// suggestion order, a nil slot means the suggestion failed to resolve or
// the service knows no such movie.
func (c *Curator) resolveSuggestions(ctx context.Context, suggestions []domain.Suggestion) []*domain.Candidate {
	resolved := make([]*domain.Candidate, len(suggestions))

	g := &errgroup.Group{}
	g.SetLimit(c.workers())

	for i, sug := range suggestions {
		g.Go(func() error {
			cand, err := c.lookupTitle(ctx, sug.Title, sug.Year)
			if err != nil {
				lgr.Printf("[WARN] lookup %q (%d) failed: %v", sug.Title, sug.Year, err)
				return nil
			}
			resolved[i] = cand
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, failed slots stay nil

	return resolved
}

// lookupTitle resolves one title to its canonical candidate, cache-aside
// with singleflight. Not-found is cached too so repeat runs skip the
// service for titles it will never know.
func (c *Curator) lookupTitle(ctx context.Context, title string, year int) (*domain.Candidate, error) {
	key := title + ":" + strconv.Itoa(year)

	v, err, _ := c.sf.Do("lookup:"+key, func() (interface{}, error) {
		if payload, ok, err := c.cache.Get(ctx, "lookup", key); err == nil && ok {
			var cached *domain.Candidate
			if err := json.Unmarshal(payload, &cached); err == nil {
				return cached, nil
			}
			lgr.Printf("[WARN] corrupt cache entry for lookup %q, refetching", key)
		}

		cand, err := c.metadata.Lookup(ctx, title, year)
		if err != nil {
			return nil, fmt.Errorf("lookup %q: %w", title, err)
		}

		if payload, err := json.Marshal(cand); err == nil { // nil marshals to "null"
			if err := c.cache.Set(ctx, "lookup", key, payload, c.params.CacheTTL); err != nil {
				lgr.Printf("[WARN] failed to cache lookup %q: %v", key, err)
			}
		}
		return cand, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Candidate), nil
}
