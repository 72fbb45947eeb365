// Package server exposes the preview HTTP interface for the generated page.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/wildpages/wildpages/internal/metrics"
)

// Server serves the generated animals page plus health and metrics routes.
type Server struct {
	router     chi.Router
	outputPath string
	logger     *zap.Logger
}

// New constructs a Server with middleware and routes.
func New(outputPath string, logger *zap.Logger) *Server {
	metrics.Init()

	s := &Server{
		outputPath: outputPath,
		logger:     logger,
	}

	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Get("/", s.page)
	r.Get("/healthz", s.healthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	s.router = r
	return s
}

// Handler returns the Router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Preview server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) page(w http.ResponseWriter, _ *http.Request) {
	data, err := os.ReadFile(s.outputPath)
	if err != nil {
		if os.IsNotExist(err) {
			http.Error(w, "no page generated yet; run `wildpages generate` or `wildpages fetch` first", http.StatusNotFound)
			return
		}
		s.logger.Error("Failed to read generated page", zap.Error(err))
		http.Error(w, "failed to read generated page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(data); err != nil {
		s.logger.Error("Failed to write page response", zap.Error(err))
	}
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		s.logger.Error("Failed to encode health response", zap.Error(err))
	}
}
