package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/versbook/folio/internal/api"
	"github.com/versbook/folio/internal/config"
	"github.com/versbook/folio/internal/home"
	"github.com/versbook/folio/internal/server/endpoints"
	"github.com/versbook/folio/internal/svcctx"
)

// Server is the main Folio HTTP server. It owns the home directory layout
// and the hot-reloading configuration manager that endpoints read through
// the request context.
type Server struct {
	httpServer *http.Server
	configMgr  *config.Manager
	home       *home.Dir
	logger     *slog.Logger

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// Home is the folio home directory layout
	Home *home.Dir
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Home == nil {
		h, err := home.New("")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.Home = h
	}
	if cfg.ConfigManager == nil {
		return nil, errors.New("config manager is required")
	}

	s := &Server{
		configMgr: cfg.ConfigManager,
		home:      cfg.Home,
		logger:    cfg.Logger,
	}

	// Log config reloads; endpoints always read the latest snapshot.
	cfg.ConfigManager.OnChange(func(c *config.Config) {
		cfg.Logger.Info("configuration reloaded", "mode", c.Mode)
	})

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{SwaggerSpecPath: endpoints.GetSwaggerSpecPath()}) {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireInit)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute, // PDF rendering can take a while
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start starts the server. It blocks until the context is cancelled or an
// error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	if err := s.home.EnsureExists(); err != nil {
		s.setNotRunning()
		return fmt.Errorf("failed to prepare home directory: %w", err)
	}

	// Create services struct for context enrichment
	s.services = &svcctx.Services{
		ConfigManager: s.configMgr,
		Home:          s.home,
		Logger:        s.logger,
	}

	// Start HTTP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown performs graceful shutdown of the HTTP server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Home returns the home directory layout.
func (s *Server) Home() *home.Dir {
	return s.home
}

// withServices wraps a handler to enrich the request context with services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if s.services != nil {
			ctx = svcctx.WithServices(ctx, s.services)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireInit is middleware that ensures the server is fully initialized.
// Returns 503 Service Unavailable until Start has prepared the services.
func (s *Server) requireInit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.services == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"server not fully initialized"}`))
			return
		}
		next(w, r)
	}
}
