package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/marksentry/marksentry/internal/config"
	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/logging"
)

// Server wraps http.Server with the timeouts from configuration and graceful
// shutdown.
type Server struct {
	srv             *http.Server
	log             logging.Logger
	shutdownTimeout time.Duration
}

// NewServer builds a Server over handler using cfg's port and timeouts.
func NewServer(cfg config.ServerConfig, handler http.Handler, log logging.Logger) *Server {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Server{
		log:             log.Named("http"),
		shutdownTimeout: cfg.ShutdownTimeout,
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Start serves until the listener fails or Stop is called.  A clean shutdown
// returns nil.
func (s *Server) Start() error {
	s.log.Info("server listening", logging.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
