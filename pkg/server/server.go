package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"ollama-bridge/pkg/config"
	"ollama-bridge/pkg/proxy/handlers"
	"ollama-bridge/pkg/proxy/middleware"
	"ollama-bridge/pkg/telemetry/metrics"
)

// Route paths.
const (
	PathRoot            = "/"
	PathHealth          = "/health"
	PathModels          = "/v1/models"
	PathChatCompletions = "/v1/chat/completions"
	PathCompletions     = "/v1/completions"
)

// Server is the bridge's HTTP server.
type Server struct {
	config       *config.Config
	backend      handlers.Backend
	metrics      *metrics.Collector
	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
	addr         net.Addr
}

// NewServer creates a server. collector may be nil, in which case no
// metrics are recorded or exposed.
func NewServer(cfg *config.Config, backend handlers.Backend, collector *metrics.Collector) *Server {
	return &Server{
		config:       cfg,
		backend:      backend,
		metrics:      collector,
		shutdownChan: make(chan struct{}),
	}
}

// Start listens on the configured address and blocks until ctx is
// cancelled, SIGINT or SIGTERM arrives, RequestShutdown is called, or the
// server fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}

	proxyCfg := s.config.Proxy
	listener, err := net.Listen("tcp", proxyCfg.ListenAddress())
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to listen on %s: %w", proxyCfg.ListenAddress(), err)
	}

	s.httpServer = &http.Server{
		Handler:        s.setupRoutes(),
		ReadTimeout:    proxyCfg.ReadTimeout,
		WriteTimeout:   proxyCfg.WriteTimeout,
		IdleTimeout:    proxyCfg.IdleTimeout,
		MaxHeaderBytes: proxyCfg.MaxHeaderBytes,
	}
	s.addr = listener.Addr()
	s.isRunning = true
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting ollama bridge",
			"address", listener.Addr().String(),
			"ollama_host", s.config.Backend.Host,
			"default_model", s.config.Backend.DefaultModel,
		)

		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
		return err
	case <-s.shutdownChan:
		slog.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// RequestShutdown asks a running Start to return.
func (s *Server) RequestShutdown() {
	select {
	case <-s.shutdownChan:
	default:
		close(s.shutdownChan)
	}
}

// Shutdown gracefully shuts down the server, letting open streams finish
// until the shutdown timeout expires.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		slog.Info("initiating graceful shutdown", "timeout", s.config.Proxy.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Proxy.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		slog.Info("ollama bridge stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	defaultModel := s.config.Backend.DefaultModel

	mux.Handle(PathRoot, handlers.NewRootHandler())
	mux.Handle(PathHealth, handlers.NewHealthHandler(s.backend))
	mux.Handle(PathModels, handlers.NewModelsHandler(s.backend))
	mux.Handle(PathChatCompletions, handlers.NewChatHandler(s.backend, defaultModel, s.metrics))
	mux.Handle(PathCompletions, handlers.NewCompletionHandler(s.backend, defaultModel, s.metrics))

	routes := []string{PathRoot, PathHealth, PathModels, PathChatCompletions, PathCompletions}

	metricsCfg := s.config.Telemetry.Metrics
	if s.metrics.Enabled() && metricsCfg.Path != "" {
		mux.Handle(metricsCfg.Path, s.metrics.Handler())
		routes = append(routes, metricsCfg.Path)
	}

	var handler http.Handler = mux

	handler = middleware.MetricsMiddleware(s.metrics, routes...)(handler)

	handler = middleware.CORSMiddleware(s.convertCORSConfig())(handler)

	handler = middleware.LoggingMiddleware(handler)

	handler = middleware.RequestIDMiddleware(handler)

	// Recovery middleware (outermost)
	handler = middleware.RecoveryMiddleware(handler)

	return handler
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Addr returns the bound address while running, nil otherwise.
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.isRunning {
		return nil
	}
	return s.addr
}

// Handler returns the configured HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// convertCORSConfig converts config.CORSConfig to middleware.CORSConfig.
func (s *Server) convertCORSConfig() *middleware.CORSConfig {
	cors := s.config.Proxy.CORS
	return &middleware.CORSConfig{
		Enabled:          cors.Enabled,
		AllowedOrigins:   cors.AllowedOrigins,
		AllowedMethods:   cors.AllowedMethods,
		AllowedHeaders:   cors.AllowedHeaders,
		ExposedHeaders:   cors.ExposedHeaders,
		MaxAge:           cors.MaxAge,
		AllowCredentials: cors.AllowCredentials,
	}
}
