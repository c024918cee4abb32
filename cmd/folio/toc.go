package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/versbook/folio/internal/config"
	"github.com/versbook/folio/internal/home"
	"github.com/versbook/folio/internal/toc"
)

var (
	tocOutput string
	tocMode   string
)

var tocCmd = &cobra.Command{
	Use:   "toc <input.pdf>",
	Short: "Add a table of contents to a PDF",
	Long: `Build TOC entries for the given PDF, typeset them and write a new PDF
with the generated TOC pages inserted.

Runs entirely locally without a server.

Examples:
  folio toc book.pdf -o book_with_toc.pdf
  folio toc book.pdf -o out.pdf --mode scan   # No printed contents page`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}

		cfg := cm.Get()
		if tocMode != "" {
			override := *cfg
			override.Mode = tocMode
			cfg = &override
		}

		builderCfg, err := cfg.BuilderConfig(h, logger)
		if err != nil {
			return err
		}

		builder, err := toc.NewBuilder(builderCfg)
		if err != nil {
			return err
		}

		if err := builder.AddTableOfContents(cmd.Context(), args[0], tocOutput); err != nil {
			return err
		}
		fmt.Println("Wrote:", tocOutput)
		return nil
	},
}

func init() {
	tocCmd.Flags().StringVarP(&tocOutput, "output", "o", "", "Output PDF path")
	tocCmd.Flags().StringVar(&tocMode, "mode", "", "Title source mode: extract or scan")
	tocCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(tocCmd)
}
