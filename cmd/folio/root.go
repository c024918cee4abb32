package main

import (
	"github.com/spf13/cobra"

	"github.com/versbook/folio/internal/api"
	"github.com/versbook/folio/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "TOC generation and watermarking for PDF books",
	Long: `Folio reconciles a book's declared table of contents with the pages
where its titles actually appear, typesets matching TOC pages and inserts
them into the PDF.

It can also:
  - Scan books without a contents page using font-size heuristics
  - Stamp a text watermark on every page
  - Run as an HTTP service for both operations`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.folio/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "folio home directory (default: ~/.folio)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
