// Package webserver serves the live report, per-group charts and static assets.
package webserver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/mwiater/distilreport/internal/logging"
	"github.com/mwiater/distilreport/internal/results"
)

// Config holds the HTTP server configuration.
type Config struct {
	Host        string
	Port        int
	CSVPath     string
	MethodOrder []string
	Title       string
	NotesPath   string
	// StaticDir is served ahead of Assets when set.
	StaticDir string
	// Assets must contain a "static" directory.
	Assets fs.FS
}

// Server wraps the HTTP server with configuration.
type Server struct {
	cfg Config
	srv *http.Server
}

// New creates a new HTTP server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == 0 {
		cfg.Port = 5001
	}
	if cfg.MethodOrder == nil {
		cfg.MethodOrder = results.DefaultMethodOrder
	}
	if cfg.CSVPath == "" {
		return nil, errors.New("webserver: csv path is required")
	}

	mux := http.NewServeMux()
	if err := registerRoutes(mux, cfg); err != nil {
		return nil, err
	}
	return &Server{
		cfg: cfg,
		srv: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:           logRequests(mux),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	logging.LogEvent("[server] Listening on http://%s (csv=%s)", s.srv.Addr, s.cfg.CSVPath)

	go func() {
		<-ctx.Done()
		logging.LogEvent("[server] Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			logging.LogEvent("[server] Shutdown error: %v", err)
		}
	}()

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.LogRequest(r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
