// Package svcctx provides service context for dependency injection via
// context. This package is separate from server to avoid import cycles
// with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/versbook/folio/internal/config"
	"github.com/versbook/folio/internal/home"
)

// Services holds the core services that flow through context.
// Endpoints extract what they need via the individual extractors.
type Services struct {
	ConfigManager *config.Manager
	Home          *home.Dir
	Logger        *slog.Logger
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// ConfigManagerFrom extracts the config manager from context.
func ConfigManagerFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.ConfigManager
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}
