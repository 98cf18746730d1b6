package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"paperview/internal/log"
	"paperview/internal/site"
)

// Server serves one build of the showcase site from memory.
//
// Design decision: Requests are answered from the build's artifact map
// rather than the output directory because:
// 1. Watch mode can swap a whole rebuild atomically under one lock
// 2. A failed rebuild can never leave a half-written site on screen
// 3. Previews work without materializing anything to disk
type Server struct {
	// addr is the host:port to listen on.
	addr string

	// shutdownTimeout bounds how long graceful shutdown waits for
	// in-flight requests.
	shutdownTimeout time.Duration

	// logger for structured logging.
	logger *slog.Logger

	// router dispatches requests to the artifact handlers.
	router *chi.Mux

	// build is the currently served build. Guarded by mu so watch mode
	// can swap it while requests are in flight.
	mu    sync.RWMutex
	build *site.Build
}

// Option is a function that configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger for the server.
// If not set, the default logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithShutdownTimeout bounds graceful shutdown.
// Default is 5 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// New creates a preview server for the given build.
// The build may be nil until the first Swap; requests are answered with
// 503 until then.
func New(addr string, build *site.Build, opts ...Option) *Server {
	s := &Server{
		addr:            addr,
		build:           build,
		shutdownTimeout: 5 * time.Second,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.router = chi.NewRouter()
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(log.RequestLogger(s.logger))

	// The preview is read-only, so CORS stays open for local tooling
	// that fetches the JSON or markdown exports from another origin.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
	}))

	s.router.Get("/", s.pageHandler)
	s.router.Head("/", s.pageHandler)
	s.router.Get("/*", s.artifactHandler)
	s.router.Head("/*", s.artifactHandler)
}

// Swap replaces the served build. In-flight requests finish against the
// build they started with. A nil build is ignored.
func (s *Server) Swap(build *site.Build) {
	if build == nil {
		return
	}

	s.mu.Lock()
	s.build = build
	s.mu.Unlock()

	s.logger.Info("preview updated",
		"artifacts", build.Len(),
		"bytes", build.TotalBytes(),
	)
}

// current returns the build being served.
func (s *Server) current() *site.Build {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.build
}

// pageHandler serves the rendered page at the site root.
func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	build := s.current()
	if build == nil || build.PagePath == "" {
		http.Error(w, "no build available", http.StatusServiceUnavailable)
		return
	}
	s.serveArtifact(w, r, build, build.PagePath)
}

// artifactHandler serves any artifact by its build path.
func (s *Server) artifactHandler(w http.ResponseWriter, r *http.Request) {
	build := s.current()
	if build == nil {
		http.Error(w, "no build available", http.StatusServiceUnavailable)
		return
	}
	s.serveArtifact(w, r, build, strings.TrimPrefix(r.URL.Path, "/"))
}

func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, build *site.Build, artifact string) {
	data, ok := build.Artifact(artifact)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", contentType(artifact))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

// contentType maps an artifact path to its Content-Type header.
func contentType(artifact string) string {
	switch path.Ext(artifact) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".json":
		return "application/json"
	case ".md":
		return "text/markdown; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until ctx is cancelled, then shuts down
// gracefully, draining in-flight requests up to the shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("preview server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down preview server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%w: %v", ErrShutdownFailed, err)
	}
	return nil
}
