// Package scheduler drives periodic curation runs and cache maintenance.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/reelscope/pkg/config"
	"github.com/umputun/reelscope/pkg/domain"
)

//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . History
//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . Cache

// Engine runs curations and lists themes
type Engine interface {
	Run(ctx context.Context, themeName string) (domain.RunResult, error)
	Themes() ([]*config.ThemeSpec, error)
}

// History answers when a theme last ran successfully
type History interface {
	LastSuccessByTheme(ctx context.Context, theme string) (time.Time, error)
}

// Cache supports expired-entry cleanup
type Cache interface {
	Purge(ctx context.Context) (int64, error)
}

// Scheduler checks for due themes and purges the metadata cache
type Scheduler struct {
	engine  Engine
	history History
	cache   Cache

	checkInterval time.Duration
	purgeInterval time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a scheduler from configuration
func NewScheduler(engine Engine, history History, cache Cache, cfg config.ScheduleConfig) *Scheduler {
	if cfg.CheckInterval == 0 {
		cfg.CheckInterval = time.Hour
	}
	if cfg.PurgeInterval == 0 {
		cfg.PurgeInterval = 6 * time.Hour
	}
	return &Scheduler{
		engine:        engine,
		history:       history,
		cache:         cache,
		checkInterval: cfg.CheckInterval,
		purgeInterval: cfg.PurgeInterval,
	}
}

// Start begins the periodic workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.curationWorker(ctx)

	s.wg.Add(1)
	go s.purgeWorker(ctx)

	lgr.Printf("[INFO] scheduler started, check interval %v, purge interval %v", s.checkInterval, s.purgeInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// curationWorker runs due themes on every tick
func (s *Scheduler) curationWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	// run immediately on start
	s.runDueThemes(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runDueThemes(ctx)
		}
	}
}

// runDueThemes curates every scheduled theme whose last success is older
// than its interval. Sequential on purpose, the engine's per-theme lock
// makes overlap with manual runs safe either way.
func (s *Scheduler) runDueThemes(ctx context.Context) {
	specs, err := s.engine.Themes()
	if err != nil {
		lgr.Printf("[ERROR] failed to load themes: %v", err)
		return
	}

	now := time.Now()
	for _, spec := range specs {
		if spec.Schedule <= 0 {
			continue // manual runs only
		}
		lastOK, err := s.history.LastSuccessByTheme(ctx, spec.Name)
		if err != nil {
			lgr.Printf("[WARN] failed to get last run for %s: %v", spec.Name, err)
			continue
		}
		if !lastOK.IsZero() && now.Sub(lastOK) < spec.Schedule {
			continue
		}

		lgr.Printf("[INFO] scheduled curation for %s due, last success %v", spec.Name, lastOK)
		if _, err := s.engine.Run(ctx, spec.Name); err != nil {
			lgr.Printf("[WARN] scheduled curation for %s: %v", spec.Name, err)
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// purgeWorker drops expired cache entries on every tick
func (s *Scheduler) purgeWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.cache.Purge(ctx)
			if err != nil {
				lgr.Printf("[WARN] cache purge failed: %v", err)
				continue
			}
			if n > 0 {
				lgr.Printf("[INFO] purged %d expired cache entries", n)
			}
		}
	}
}
