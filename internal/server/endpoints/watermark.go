package endpoints

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/versbook/folio/internal/api"
	"github.com/versbook/folio/internal/pdfops"
	"github.com/versbook/folio/internal/svcctx"
)

// WatermarkEndpoint handles POST /api/watermark: upload a PDF, receive
// the same document with the configured text stamped on every page.
type WatermarkEndpoint struct{}

var _ api.Endpoint = (*WatermarkEndpoint)(nil)

func (e *WatermarkEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/watermark", e.handler
}

func (e *WatermarkEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Stamp a text watermark on every page of a PDF
//	@Tags			watermark
//	@Accept			mpfd
//	@Produce		application/pdf
//	@Param			file	formData	file	true	"PDF to stamp"
//	@Param			text	formData	string	false	"Watermark text (overrides the configured default)"
//	@Success		200	{file}		file
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/watermark [post]
func (e *WatermarkEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	upload, workDir, ok := receiveUpload(w, r)
	if !ok {
		return
	}
	defer os.RemoveAll(workDir)

	opts := svcctx.ConfigManagerFrom(r.Context()).Get().WatermarkOptions()
	if text := r.FormValue("text"); text != "" {
		opts.Text = text
	}

	outPath := filepath.Join(workDir, "out.pdf")
	if err := pdfops.StampText(upload.path, outPath, opts); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	svcctx.LoggerFrom(r.Context()).Info("stamped watermark",
		"file", upload.name,
		"text", opts.Text,
	)

	streamPDF(w, outPath, suffixedName(upload.name, "_watermarked"))
}

func (e *WatermarkEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		filePath   string
		outputPath string
		text       string
	)
	cmd := &cobra.Command{
		Use:   "watermark",
		Short: "Watermark a PDF via the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer out.Close()

			fields := map[string]string{}
			if text != "" {
				fields["text"] = text
			}

			client := api.NewClient(getServerURL())
			if err := client.PostFile(cmd.Context(), "/api/watermark", "file", filePath, fields, out); err != nil {
				os.Remove(outputPath)
				return err
			}
			fmt.Println("Wrote:", outputPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&filePath, "file", "", "PDF file to upload")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output PDF path")
	cmd.Flags().StringVar(&text, "text", "", "Watermark text")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("output")
	return cmd
}
