// Package httpserver exposes the discovered index over a small JSON API.
package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/raffopenssh/inspire-austria/internal/config"
	"github.com/raffopenssh/inspire-austria/internal/service"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	http   *http.Server
	logger *slog.Logger
}

func New(cfg config.HTTPConfig, query *service.QueryService, combine *service.CombineService, logger *slog.Logger) *Server {
	h := &handler{
		query:   query,
		combine: combine,
		logger:  logger.With("component", "http"),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", h.healthz)
	r.Route("/api", func(r chi.Router) {
		r.Get("/search", h.search)
		r.Get("/datasets/{id}/schema", h.datasetSchema)
		r.Get("/fields/{name}", h.field)
		r.Get("/concepts", h.concepts)
		r.Get("/combine", h.combineReport)
	})

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{http: s, logger: h.logger}
}

// Start runs the HTTP server and blocks until error or shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.http.Addr)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop gracefully shuts down the server with the provided context deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.http.Shutdown(ctx)
}
