package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/versbook/folio/internal/api"
	"github.com/versbook/folio/internal/svcctx"
)

// HealthResponse is the response for health check endpoints.
type HealthResponse struct {
	Status string `json:"status"`
	Config string `json:"config,omitempty"`
}

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthEndpoint handles GET /health.
type HealthEndpoint struct{}

var _ api.Endpoint = (*HealthEndpoint)(nil)

func (e *HealthEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/health", e.handler
}

func (e *HealthEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Server health check
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/health [get]
func (e *HealthEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (e *HealthEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp HealthResponse
			if err := client.Get(cmd.Context(), "/health", &resp); err != nil {
				return err
			}
			fmt.Printf("Status: %s\n", resp.Status)
			return nil
		},
	}
}

// ReadyEndpoint handles GET /ready.
type ReadyEndpoint struct{}

var _ api.Endpoint = (*ReadyEndpoint)(nil)

func (e *ReadyEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/ready", e.handler
}

func (e *ReadyEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Server readiness check (includes configuration)
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	HealthResponse
//	@Router			/ready [get]
func (e *ReadyEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Config: "ok"}

	if svcctx.ConfigManagerFrom(r.Context()) == nil || svcctx.HomeFrom(r.Context()) == nil {
		resp.Status = "degraded"
		resp.Config = "not_initialized"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *ReadyEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "Check server readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp HealthResponse
			if err := client.Get(cmd.Context(), "/ready", &resp); err != nil {
				return err
			}
			fmt.Printf("Status: %s\n", resp.Status)
			if resp.Config != "" {
				fmt.Printf("Config: %s\n", resp.Config)
			}
			return nil
		},
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
