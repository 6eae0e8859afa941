// Package api exposes the layout pipeline over HTTP, for embedding the
// engine in clinical tooling that cannot shell out to the CLI.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Tato14/Ped-eeg-position/pkg/config"
	"github.com/Tato14/Ped-eeg-position/pkg/pipeline"
)

// Server wires the pipeline runner into an HTTP router.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	cfg    config.ServerConfig
	render config.RenderConfig
}

// New creates a server around the given runner. The config's render
// section supplies defaults for any render parameter a request omits.
func New(runner *pipeline.Runner, logger *log.Logger, cfg config.Config) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger, cfg: cfg.Server, render: cfg.Render}
}

// Router builds the HTTP handler with middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/layout", s.handleLayout)
		r.Get("/render", s.handleRender)
	})
	return r
}

// ListenAndServe runs the server until the listener fails or ctx is
// cancelled, then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", s.cfg.Addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
