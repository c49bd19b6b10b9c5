// Package curator implements the curation engine: keyword derivation,
// candidate pool assembly, AI suggestion resolution, library matching,
// selection and additive collection sync.
package curator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/singleflight"

	"github.com/umputun/reelscope/pkg/config"
	"github.com/umputun/reelscope/pkg/domain"
	"github.com/umputun/reelscope/pkg/library"
)

//go:generate moq -out mocks/metadata.go -pkg mocks -skip-ensure -fmt goimports . MetadataService
//go:generate moq -out mocks/library.go -pkg mocks -skip-ensure -fmt goimports . LibraryService
//go:generate moq -out mocks/suggester.go -pkg mocks -skip-ensure -fmt goimports . SuggesterService
//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . CacheStore
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . HistoryStore

// ErrAlreadyRunning is returned when a run is requested for a theme that
// is currently being curated
var ErrAlreadyRunning = errors.New("curation already running")

// MetadataService searches and resolves movies on the metadata service
type MetadataService interface {
	Search(ctx context.Context, keyword string) ([]domain.Candidate, error)
	Lookup(ctx context.Context, title string, year int) (*domain.Candidate, error)
}

// LibraryService provides library listing and collection manipulation
type LibraryService interface {
	Movies(ctx context.Context) ([]library.Entry, error)
	GetCollection(ctx context.Context, name string) (*domain.Collection, error)
	CreateCollection(ctx context.Context, name string, keys []string) error
	AddItem(ctx context.Context, name, key string) error
	SetPromoted(ctx context.Context, name string, promoted bool) error
}

// SuggesterService provides AI title suggestions
type SuggesterService interface {
	Suggest(ctx context.Context, prompt string, max int) ([]domain.Suggestion, error)
}

// CacheStore persists metadata responses between runs
type CacheStore interface {
	Get(ctx context.Context, kind, query string) ([]byte, bool, error)
	Set(ctx context.Context, kind, query string, payload []byte, ttl time.Duration) error
}

// HistoryStore records completed runs
type HistoryStore interface {
	Record(ctx context.Context, res domain.RunResult) error
}

// Curator runs theme curations end to end
type Curator struct {
	metadata  MetadataService
	library   LibraryService
	suggester SuggesterService
	cache     CacheStore
	history   HistoryStore
	themesDir string
	params    config.EngineConfig

	sf    singleflight.Group
	locks locker
}

// NewCurator creates the curation engine
func NewCurator(metadata MetadataService, lib LibraryService, suggester SuggesterService,
	cache CacheStore, history HistoryStore, themesDir string, params config.EngineConfig) *Curator {
	return &Curator{
		metadata:  metadata,
		library:   lib,
		suggester: suggester,
		cache:     cache,
		history:   history,
		themesDir: themesDir,
		params:    params,
	}
}

// Themes returns all theme specs from the themes directory
func (c *Curator) Themes() ([]*config.ThemeSpec, error) {
	return config.LoadThemes(c.themesDir)
}

// Run curates a single theme by name. Concurrent runs of the same theme
// are rejected with ErrAlreadyRunning and a status-only result, nothing
// is touched. Every other outcome is recorded to run history.
func (c *Curator) Run(ctx context.Context, themeName string) (domain.RunResult, error) {
	if !c.locks.tryLock(themeName) {
		lgr.Printf("[INFO] curation for %s already running, skipped", themeName)
		return domain.RunResult{Theme: themeName, Status: domain.StatusAlreadyRunning, Started: time.Now()}, ErrAlreadyRunning
	}
	defer c.locks.unlock(themeName)

	started := time.Now()
	spec, err := c.loadTheme(themeName)
	if err != nil {
		result := domain.RunResult{Theme: themeName, Status: domain.StatusFailed, Error: err.Error(), Started: started}
		c.record(ctx, result)
		return result, err
	}

	if c.params.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.params.RunTimeout)
		defer cancel()
	}

	result, err := c.curate(ctx, spec, started)
	result.Elapsed = time.Since(started)
	c.record(ctx, result)

	if err != nil {
		lgr.Printf("[WARN] curation for %s failed: %v", themeName, err)
		return result, err
	}
	lgr.Printf("[INFO] curation for %s done in %v: %d matched, %d added, %d already present, status %s",
		themeName, result.Elapsed.Round(time.Millisecond), result.MatchedCount, result.AddedCount,
		result.AlreadyPresent, result.Status)
	return result, nil
}

// RunAll curates every loaded theme sequentially, collecting per-theme
// results. A failing theme doesn't stop the rest.
func (c *Curator) RunAll(ctx context.Context) ([]domain.RunResult, error) {
	specs, err := config.LoadThemes(c.themesDir)
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}

	results := make([]domain.RunResult, 0, len(specs))
	for _, spec := range specs {
		res, err := c.Run(ctx, spec.Name)
		if err != nil && !errors.Is(err, ErrAlreadyRunning) {
			lgr.Printf("[WARN] run for %s: %v", spec.Name, err)
		}
		results = append(results, res)
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
	}
	return results, nil
}

// curate is the pipeline body, called with the theme lock held
func (c *Curator) curate(ctx context.Context, spec *config.ThemeSpec, started time.Time) (domain.RunResult, error) {
	result := domain.RunResult{Theme: spec.Name, Collection: spec.CollectionName, Started: started}

	keywords := deriveKeywords(*spec)
	lgr.Printf("[DEBUG] theme %s keywords: %v", spec.Name, keywords)

	pool, keywordFailures := c.buildPool(ctx, keywords)
	lgr.Printf("[DEBUG] theme %s pool: %d candidates, %d keyword failures", spec.Name, len(pool), keywordFailures)

	var suggestions []domain.Suggestion
	aiDegraded := false
	if spec.UseAI {
		var err error
		suggestions, err = c.suggester.Suggest(ctx, spec.AIPrompt, c.maxSuggestions())
		if err != nil {
			lgr.Printf("[WARN] ai suggestions for %s failed, keyword pool only: %v", spec.Name, err)
			suggestions = nil
		}
		if len(suggestions) == 0 {
			aiDegraded = true
		}
	}
	resolved := c.resolveSuggestions(ctx, suggestions)

	entries, err := c.library.Movies(ctx)
	if err != nil {
		result.Status = domain.StatusFailed
		result.Error = err.Error()
		return result, fmt.Errorf("build library index: %w", err)
	}
	idx := library.NewIndex(entries)

	aiMatches, aiUnmatched := c.matchResolved(idx, resolved)
	poolMatches, poolUnmatched := c.matchPool(idx, pool)
	result.UnmatchedCount = aiUnmatched + poolUnmatched
	result.MatchedCount = countDistinct(aiMatches, poolMatches)

	items := selectItems(aiMatches, poolMatches, spec.MinRating, c.maxItems(spec))

	summary, err := c.syncCollection(ctx, spec.CollectionName, items, spec.Promote)
	if err != nil {
		result.Status = domain.StatusFailed
		result.Error = err.Error()
		return result, fmt.Errorf("sync collection %q: %w", spec.CollectionName, err)
	}
	result.AddedCount = summary.Added
	result.AlreadyPresent = summary.AlreadyPresent
	result.FailedAddCount = summary.Failed
	result.CollectionSize = summary.Size

	result.Status = domain.StatusSuccess
	if summary.Failed > 0 || keywordFailures > 0 || aiDegraded {
		result.Status = domain.StatusPartial
	}
	return result, nil
}

// matchResolved matches resolved AI candidates against the index keeping
// suggestion order. Nil slots (unresolved suggestions) count as unmatched.
func (c *Curator) matchResolved(idx *library.Index, resolved []*domain.Candidate) ([]domain.MatchedItem, int) {
	var matches []domain.MatchedItem
	unmatched := 0
	for _, cand := range resolved {
		if cand == nil {
			unmatched++
			continue
		}
		entry, tier, ok := idx.Match(cand.Title, cand.Year, c.params.FuzzyThreshold)
		if !ok {
			unmatched++
			continue
		}
		matches = append(matches, domain.MatchedItem{
			Candidate:    *cand,
			LibraryKey:   entry.Key,
			LibraryTitle: entry.Title,
			Tier:         tier,
			Source:       domain.SourceAI,
		})
	}
	return matches, unmatched
}

// matchPool matches keyword-pool candidates against the index
func (c *Curator) matchPool(idx *library.Index, pool []domain.Candidate) ([]domain.MatchedItem, int) {
	var matches []domain.MatchedItem
	unmatched := 0
	for _, cand := range pool {
		entry, tier, ok := idx.Match(cand.Title, cand.Year, c.params.FuzzyThreshold)
		if !ok {
			unmatched++
			continue
		}
		matches = append(matches, domain.MatchedItem{
			Candidate:    cand,
			LibraryKey:   entry.Key,
			LibraryTitle: entry.Title,
			Tier:         tier,
			Source:       domain.SourceKeyword,
		})
	}
	return matches, unmatched
}

// loadTheme reads the theme spec file for a name, trying both extensions
func (c *Curator) loadTheme(name string) (*config.ThemeSpec, error) {
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(c.themesDir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return config.LoadTheme(path)
		}
	}
	return nil, fmt.Errorf("theme %q not found in %s", name, c.themesDir)
}

// record stores the run result, never failing the run over it
func (c *Curator) record(ctx context.Context, res domain.RunResult) {
	if err := c.history.Record(context.WithoutCancel(ctx), res); err != nil {
		lgr.Printf("[WARN] failed to record run for %s: %v", res.Theme, err)
	}
}

func (c *Curator) workers() int {
	if c.params.MaxWorkers > 0 {
		return c.params.MaxWorkers
	}
	return 10
}

func (c *Curator) maxSuggestions() int {
	if c.params.MaxSuggestions > 0 {
		return c.params.MaxSuggestions
	}
	return 40
}

func (c *Curator) maxItems(spec *config.ThemeSpec) int {
	if spec.MaxItems > 0 {
		return spec.MaxItems
	}
	return c.params.MaxItems
}

// countDistinct counts unique library keys across both match sets
func countDistinct(groups ...[]domain.MatchedItem) int {
	seen := map[string]struct{}{}
	for _, g := range groups {
		for _, m := range g {
			seen[m.LibraryKey] = struct{}{}
		}
	}
	return len(seen)
}

// locker is a per-name in-process try-lock registry
type locker struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func (l *locker) tryLock(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active == nil {
		l.active = map[string]struct{}{}
	}
	if _, busy := l.active[name]; busy {
		return false
	}
	l.active[name] = struct{}{}
	return true
}

func (l *locker) unlock(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.active, name)
}
