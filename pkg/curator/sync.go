package curator

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/reelscope/pkg/domain"
)

// syncCollection reconciles the selected items into the named collection.
// Additive only: items already present are left alone and stale members
// are never removed. A missing collection is created with the full item
// set, and create failure fails the run. Individual add failures after a
// retry are counted and the sync carries on.
func (c *Curator) syncCollection(ctx context.Context, name string, items []domain.MatchedItem, promote bool) (domain.SyncSummary, error) {
	coll, err := c.library.GetCollection(ctx, name)
	if err != nil {
		return domain.SyncSummary{}, fmt.Errorf("get collection: %w", err)
	}

	var summary domain.SyncSummary

	if coll == nil {
		keys := make([]string, len(items))
		for i, item := range items {
			keys[i] = item.LibraryKey
		}
		if err := c.library.CreateCollection(ctx, name, keys); err != nil {
			return domain.SyncSummary{}, fmt.Errorf("create collection: %w", err)
		}
		lgr.Printf("[INFO] created collection %q with %d items", name, len(keys))
		summary.Added = len(keys)
		summary.Size = len(keys)
	} else {
		summary.Size = len(coll.Keys)
		for _, item := range items {
			if coll.HasKey(item.LibraryKey) {
				summary.AlreadyPresent++
				continue
			}
			retrier := repeater.NewBackoff(2, 200*time.Millisecond) // one retry per item
			err := retrier.Do(ctx, func() error { return c.library.AddItem(ctx, name, item.LibraryKey) })
			if err != nil {
				lgr.Printf("[WARN] failed to add %q (%s) to %q: %v", item.LibraryTitle, item.LibraryKey, name, err)
				summary.Failed++
				continue
			}
			summary.Added++
			summary.Size++
		}
	}

	if promote {
		if err := c.library.SetPromoted(ctx, name, true); err != nil {
			lgr.Printf("[WARN] failed to promote collection %q: %v", name, err)
		}
	}

	return summary, nil
}
