// Package server собирает HTTP сервер истории версий: маршруты, middleware
// и жизненный цикл с graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/versioneditor/internal/config"
	"github.com/iudanet/versioneditor/internal/server/handlers"
	"github.com/iudanet/versioneditor/internal/server/metrics"
	"github.com/iudanet/versioneditor/internal/server/middleware"
)

// Service операции, которые сервер предоставляет по HTTP
type Service interface {
	handlers.VersionService
	handlers.Pinger
}

// Маршруты API
const (
	RouteSaveVersion   = "POST /save-version"
	RouteListVersions  = "GET /versions"
	RouteGetVersion    = "GET /version/{id}"
	RouteDeleteVersion = "DELETE /version/{id}"
	RouteHealth        = "GET /api/v1/health"
	RouteMetrics       = "GET /metrics"
)

// Server HTTP сервер истории версий
type Server struct {
	logger      *slog.Logger
	httpServer  *http.Server
	rateLimiter *middleware.RateLimiter
	cfg         *config.Server
}

// New создает сервер. buildVersion попадает в ответ health check.
func New(logger *slog.Logger, cfg *config.Server, service Service, m *metrics.Metrics, buildVersion string) *Server {
	s := &Server{
		logger: logger,
		cfg:    cfg,
	}

	versionHandler := handlers.NewVersionHandler(logger, service, cfg.HTTP.MaxBodyBytes)
	healthHandler := handlers.NewHealthHandler(logger, service, buildVersion)

	mux := http.NewServeMux()
	mux.HandleFunc(RouteSaveVersion, versionHandler.SaveVersion)
	mux.HandleFunc(RouteListVersions, versionHandler.ListVersions)
	mux.HandleFunc(RouteGetVersion, versionHandler.GetVersion)
	mux.HandleFunc(RouteDeleteVersion, versionHandler.DeleteVersion)
	mux.HandleFunc(RouteHealth, healthHandler.Health)
	mux.Handle(RouteMetrics, m.Handler())

	chain := []func(http.Handler) http.Handler{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logging(logger, "/api/v1/health", "/metrics"),
		middleware.Metrics(m),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	}

	if cfg.RateLimit.Enabled {
		s.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, logger)
		chain = append(chain, s.rateLimiter.Middleware)
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Address,
		Handler:           middleware.Chain(mux, chain...),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       2 * time.Minute,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return s
}

// Handler возвращает корневой handler со всеми middleware
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run слушает cfg.Address до отмены ctx
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln. При отмене ctx сервер перестает принимать
// соединения и ждет завершения текущих запросов не дольше ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server started", slog.String("address", ln.Addr().String()))
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server", slog.Duration("timeout", s.cfg.HTTP.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

func (s *Server) stop() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}
