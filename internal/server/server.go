// Package server is the HTTP preview server behind "buttonstrip serve".
//
// It exposes the render pipeline, settings resolution and the handle drag
// loop as JSON endpoints so a browser page can preview a strip and edit
// shape parameters by dragging handles.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/buttonstrip/pkg/editor"
	"github.com/matzehuels/buttonstrip/pkg/observability"
	"github.com/matzehuels/buttonstrip/pkg/pipeline"
)

const (
	// maxBodyBytes caps request bodies.
	maxBodyBytes = 4 << 20

	sweepInterval = time.Minute
)

// Server serves the preview API.
type Server struct {
	runner   *pipeline.Runner
	sessions *editor.Store
	logger   *log.Logger
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithSessionStore replaces the default in-memory session store.
func WithSessionStore(st *editor.Store) Option {
	return func(s *Server) { s.sessions = st }
}

// New creates a server that renders with runner.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:   runner,
		sessions: editor.NewStore(0),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(observe)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Post("/render/{format}", s.handleRenderFormat)
	r.Post("/resolve", s.handleResolve)
	r.Route("/edit/sessions", func(r chi.Router) {
		r.Post("/", s.handleBeginEdit)
		r.Post("/{id}/move", s.handleMove)
		r.Post("/{id}/end", s.handleEndEdit)
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. Expired edit sessions are swept while the server runs.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("serving", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		s.sweep(gctx, sweepInterval)
		return nil
	})
	return g.Wait()
}

// sweep evicts expired sessions every interval until ctx is done.
func (s *Server) sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.Sweep(); n > 0 {
				observability.Editor().OnEditExpired(ctx, n)
			}
		}
	}
}

// observe reports every request to the HTTP hooks using the matched route
// pattern.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		hooks.OnRequest(r.Context(), r.Method, route)
		hooks.OnResponse(r.Context(), r.Method, route, ww.Status(), time.Since(start))
	})
}
