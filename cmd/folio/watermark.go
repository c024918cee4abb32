package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/versbook/folio/internal/config"
	"github.com/versbook/folio/internal/pdfops"
)

var (
	watermarkOutput string
	watermarkText   string
)

var watermarkCmd = &cobra.Command{
	Use:   "watermark <input.pdf>",
	Short: "Stamp a text watermark on every page of a PDF",
	Long: `Stamp the configured watermark text on every page of the given PDF.

Runs entirely locally without a server.

Examples:
  folio watermark book.pdf -o sample.pdf
  folio watermark book.pdf -o sample.pdf --text "REVIEW COPY"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}

		opts := cm.Get().WatermarkOptions()
		if watermarkText != "" {
			opts.Text = watermarkText
		}

		if err := pdfops.StampText(args[0], watermarkOutput, opts); err != nil {
			return err
		}
		fmt.Println("Wrote:", watermarkOutput)
		return nil
	},
}

func init() {
	watermarkCmd.Flags().StringVarP(&watermarkOutput, "output", "o", "", "Output PDF path")
	watermarkCmd.Flags().StringVar(&watermarkText, "text", "", "Watermark text (overrides configuration)")
	watermarkCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(watermarkCmd)
}
