package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/reelscope/pkg/config"
	"github.com/umputun/reelscope/pkg/curator"
	"github.com/umputun/reelscope/pkg/library"
	"github.com/umputun/reelscope/pkg/llm"
	"github.com/umputun/reelscope/pkg/metadata"
	"github.com/umputun/reelscope/pkg/repository"
	"github.com/umputun/reelscope/pkg/scheduler"
	"github.com/umputun/reelscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"reelscope.yml" description:"config file"`
	Theme  string `short:"t" long:"theme" description:"curate a single theme and exit"`
	RunAll bool   `long:"run-all" description:"curate all themes and exit"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] can't load config %s: %v", opts.Config, err)
		os.Exit(1)
	}

	setupLog(opts.Debug, opts.NoColor, cfg.Metadata.APIKey, cfg.Library.Token, cfg.LLM.APIKey)

	log.Printf("[INFO] starting reelscope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

// run wires the application and executes the requested mode
func run(ctx context.Context, cfg *config.Config, opts Opts) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	metaClient := metadata.NewClient(cfg.Metadata)
	libClient := library.NewClient(cfg.Library)
	suggester := llm.NewSuggester(cfg.GetLLMConfig())

	engine := curator.NewCurator(metaClient, libClient, suggester, repos.Cache, repos.Run,
		cfg.Themes.Dir, cfg.GetEngineConfig())

	// one-shot modes
	if opts.Theme != "" {
		res, err := engine.Run(ctx, opts.Theme)
		if err != nil {
			return fmt.Errorf("curate %s: %w", opts.Theme, err)
		}
		log.Printf("[INFO] curated %s: %d added, %d already present, status %s",
			res.Theme, res.AddedCount, res.AlreadyPresent, res.Status)
		return nil
	}
	if opts.RunAll {
		results, err := engine.RunAll(ctx)
		if err != nil {
			return fmt.Errorf("curate all: %w", err)
		}
		for _, res := range results {
			log.Printf("[INFO] curated %s: %d added, %d already present, status %s",
				res.Theme, res.AddedCount, res.AlreadyPresent, res.Status)
		}
		return nil
	}

	// service mode: scheduler + HTTP API
	sched := scheduler.NewScheduler(engine, repos.Run, repos.Cache, cfg.Schedule)
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, engine, repos.Run, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug)
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	var nonEmpty []string
	for _, s := range secs {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) > 0 {
		logOpts = append(logOpts, lgr.Secret(nonEmpty...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
