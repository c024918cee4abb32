package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/versbook/folio/internal/config"
	"github.com/versbook/folio/internal/home"
	"github.com/versbook/folio/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Folio server",
	Long: `Start the Folio HTTP server.

The server provides:
  - /health        - Basic server health check
  - /ready         - Readiness check (includes configuration)
  - /api/toc       - Upload a PDF, receive it with generated TOC pages
  - /api/watermark - Upload a PDF, receive it stamped on every page

Examples:
  folio serve                    # Start on default port 8080
  folio serve --port 3000        # Start on custom port
  folio serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Get home directory
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		// Load configuration with hot reload
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cm.WatchConfig()

		host := serveHost
		port := servePort
		if cfg := cm.Get(); cfg != nil {
			if !cmd.Flags().Changed("host") && cfg.Server.Host != "" {
				host = cfg.Server.Host
			}
			if !cmd.Flags().Changed("port") && cfg.Server.Port != "" {
				port = cfg.Server.Port
			}
		}

		// Create server
		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			Home:          h,
			ConfigManager: cm,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
