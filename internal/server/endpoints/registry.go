package endpoints

import (
	"github.com/versbook/folio/internal/api"
)

// Config holds dependencies needed by some endpoints.
type Config struct {
	SwaggerSpecPath string
}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&ReadyEndpoint{},

		// Document endpoints
		&TocEndpoint{},
		&WatermarkEndpoint{},

		// Swagger endpoints
		&SwaggerEndpoint{SpecPath: cfg.SwaggerSpecPath},
		&SwaggerUIEndpoint{},
	}
}
