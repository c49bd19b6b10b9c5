package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/reelscope/pkg/config"
	"github.com/umputun/reelscope/pkg/domain"
	"github.com/umputun/reelscope/pkg/scheduler/mocks"
)

func TestScheduler_RunDueThemes(t *testing.T) {
	engine := &mocks.EngineMock{
		ThemesFunc: func() ([]*config.ThemeSpec, error) {
			return []*config.ThemeSpec{
				{Name: "due", Schedule: time.Hour},
				{Name: "fresh", Schedule: time.Hour},
				{Name: "manual"}, // no schedule
				{Name: "never-ran", Schedule: time.Hour},
			}, nil
		},
		RunFunc: func(ctx context.Context, themeName string) (domain.RunResult, error) {
			return domain.RunResult{Theme: themeName, Status: domain.StatusSuccess}, nil
		},
	}
	history := &mocks.HistoryMock{
		LastSuccessByThemeFunc: func(ctx context.Context, theme string) (time.Time, error) {
			switch theme {
			case "due":
				return time.Now().Add(-2 * time.Hour), nil
			case "fresh":
				return time.Now().Add(-time.Minute), nil
			default:
				return time.Time{}, nil // never ran
			}
		},
	}

	s := NewScheduler(engine, history, &mocks.CacheMock{}, config.ScheduleConfig{})
	s.runDueThemes(context.Background())

	runs := engine.RunCalls()
	require.Len(t, runs, 2)
	assert.Equal(t, "due", runs[0].ThemeName)
	assert.Equal(t, "never-ran", runs[1].ThemeName)
}

func TestScheduler_RunDueThemes_EngineErrorsDontStop(t *testing.T) {
	engine := &mocks.EngineMock{
		ThemesFunc: func() ([]*config.ThemeSpec, error) {
			return []*config.ThemeSpec{
				{Name: "boom", Schedule: time.Hour},
				{Name: "fine", Schedule: time.Hour},
			}, nil
		},
		RunFunc: func(ctx context.Context, themeName string) (domain.RunResult, error) {
			if themeName == "boom" {
				return domain.RunResult{Theme: themeName, Status: domain.StatusFailed}, errors.New("run failed")
			}
			return domain.RunResult{Theme: themeName, Status: domain.StatusSuccess}, nil
		},
	}
	history := &mocks.HistoryMock{
		LastSuccessByThemeFunc: func(ctx context.Context, theme string) (time.Time, error) {
			return time.Time{}, nil
		},
	}

	s := NewScheduler(engine, history, &mocks.CacheMock{}, config.ScheduleConfig{})
	s.runDueThemes(context.Background())

	assert.Len(t, engine.RunCalls(), 2, "one failing theme doesn't block the rest")
}

func TestScheduler_StartStop(t *testing.T) {
	engine := &mocks.EngineMock{
		ThemesFunc: func() ([]*config.ThemeSpec, error) { return nil, nil },
	}
	purged := make(chan struct{}, 10)
	cache := &mocks.CacheMock{
		PurgeFunc: func(ctx context.Context) (int64, error) {
			purged <- struct{}{}
			return 3, nil
		},
	}

	s := NewScheduler(engine, &mocks.HistoryMock{}, cache, config.ScheduleConfig{
		CheckInterval: time.Hour,
		PurgeInterval: 20 * time.Millisecond,
	})
	s.Start(context.Background())

	select {
	case <-purged:
	case <-time.After(2 * time.Second):
		t.Fatal("purge never ran")
	}
	s.Stop()

	assert.GreaterOrEqual(t, len(engine.ThemesCalls()), 1, "curation check runs on start")
}
