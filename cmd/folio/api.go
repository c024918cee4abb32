package main

import (
	"github.com/versbook/folio/internal/api"
	"github.com/versbook/folio/internal/server/endpoints"
)

var serverURL string

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	registry := api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{}) {
		registry.Register(ep)
	}

	apiCmd := registry.BuildCommands(getServerURL)

	// Persistent so all subcommands inherit it
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8080", "Server URL",
	)

	rootCmd.AddCommand(apiCmd)
}
