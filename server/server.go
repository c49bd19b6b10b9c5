// Package server exposes the thin HTTP API over the curation engine.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/reelscope/pkg/config"
	"github.com/umputun/reelscope/pkg/curator"
	"github.com/umputun/reelscope/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . History

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	engine  Engine
	history History
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Engine runs curations and lists themes
type Engine interface {
	Run(ctx context.Context, themeName string) (domain.RunResult, error)
	Themes() ([]*config.ThemeSpec, error)
}

// History reads the run history
type History interface {
	LastRuns(ctx context.Context, limit int) ([]domain.RunResult, error)
	LastRunByTheme(ctx context.Context, theme string) (*domain.RunResult, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, engine Engine, history History, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		engine:  engine,
		history: history,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("reelscope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /themes", s.themesHandler)
		r.HandleFunc("POST /curations/{name}/run", s.runHandler)
		r.HandleFunc("GET /curations/{name}", s.curationHandler)
	})
}

// statusHandler returns server status and recent runs
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	runs, err := s.history.LastRuns(r.Context(), 20)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"runs":    runs,
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// themesHandler lists the loaded theme specs
func (s *Server) themesHandler(w http.ResponseWriter, r *http.Request) {
	specs, err := s.engine.Themes()
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, specs)
}

// runHandler kicks off a curation in the background. Responds 202 right
// away, 409 when the theme is already being curated.
func (s *Server) runHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	done := make(chan error, 1)
	go func() {
		// detached from the request, a run outlives its trigger
		_, err := s.engine.Run(context.WithoutCancel(r.Context()), name)
		done <- err
	}()

	// wait briefly so fast failures surface instead of a blind 202
	select {
	case err := <-done:
		if errors.Is(err, curator.ErrAlreadyRunning) {
			RenderError(w, r, err, http.StatusConflict)
			return
		}
		if err != nil {
			RenderError(w, r, err, http.StatusInternalServerError)
			return
		}
	case <-time.After(50 * time.Millisecond):
	}

	RenderJSON(w, r, http.StatusAccepted, map[string]string{"theme": name, "status": "started"})
}

// curationHandler returns the last run result for a theme
func (s *Server) curationHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	res, err := s.history.LastRunByTheme(r.Context(), name)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if res == nil {
		RenderError(w, r, fmt.Errorf("no runs for theme %q", name), http.StatusNotFound)
		return
	}
	RenderJSON(w, r, http.StatusOK, res)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
