package endpoints

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/versbook/folio/internal/api"
	"github.com/versbook/folio/internal/svcctx"
	"github.com/versbook/folio/internal/toc"
)

// maxUploadMemory bounds the in-memory part of multipart parsing.
const maxUploadMemory = 64 << 20 // 64MB

// TocEndpoint handles POST /api/toc: upload a PDF, receive the same book
// with generated TOC pages.
type TocEndpoint struct{}

var _ api.Endpoint = (*TocEndpoint)(nil)

func (e *TocEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/toc", e.handler
}

func (e *TocEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Add a table of contents to a PDF book
//	@Description	Uploads a PDF, builds TOC entries, paginates them and returns the assembled document
//	@Tags			toc
//	@Accept			mpfd
//	@Produce		application/pdf
//	@Param			file	formData	file	true	"PDF to augment"
//	@Param			mode	formData	string	false	"Title source mode: extract or scan"
//	@Success		200	{file}		file
//	@Failure		400	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/toc [post]
func (e *TocEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	upload, workDir, ok := receiveUpload(w, r)
	if !ok {
		return
	}
	defer os.RemoveAll(workDir)

	cfg := svcctx.ConfigManagerFrom(r.Context()).Get()
	logger := svcctx.LoggerFrom(r.Context())

	if mode := r.FormValue("mode"); mode != "" {
		override := *cfg
		override.Mode = mode
		cfg = &override
	}

	builderCfg, err := cfg.BuilderConfig(svcctx.HomeFrom(r.Context()), logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	builderCfg.TempDir = workDir

	builder, err := toc.NewBuilder(builderCfg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	outPath := filepath.Join(workDir, "out.pdf")
	if err := builder.AddTableOfContents(r.Context(), upload.path, outPath); err != nil {
		writeError(w, tocStatus(err), err.Error())
		return
	}

	streamPDF(w, outPath, suffixedName(upload.name, "_with_toc"))
}

func (e *TocEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		filePath   string
		outputPath string
		mode       string
	)
	cmd := &cobra.Command{
		Use:   "toc",
		Short: "Generate a TOC for a PDF via the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer out.Close()

			fields := map[string]string{}
			if mode != "" {
				fields["mode"] = mode
			}

			client := api.NewClient(getServerURL())
			if err := client.PostFile(cmd.Context(), "/api/toc", "file", filePath, fields, out); err != nil {
				os.Remove(outputPath)
				return err
			}
			fmt.Println("Wrote:", outputPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&filePath, "file", "", "PDF file to upload")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output PDF path")
	cmd.Flags().StringVar(&mode, "mode", "", "Title source mode: extract or scan")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("output")
	return cmd
}

// upload describes a stored request file.
type upload struct {
	name string // original file name
	path string // stored location inside the work dir
}

// receiveUpload parses the multipart form, validates the "file" part and
// stores it in a fresh per-request working directory. On failure it has
// already written the error response.
func receiveUpload(w http.ResponseWriter, r *http.Request) (upload, string, bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return upload{}, "", false
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return upload{}, "", false
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file %s is not a PDF", header.Filename))
		return upload{}, "", false
	}

	// Isolated working area per request; no cross-request state.
	homeDir := svcctx.HomeFrom(r.Context())
	workDir := filepath.Join(homeDir.TmpPath(), uuid.New().String())
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to create work dir: %v", err))
		return upload{}, "", false
	}

	inPath := filepath.Join(workDir, "in.pdf")
	dst, err := os.Create(inPath)
	if err != nil {
		os.RemoveAll(workDir)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store upload: %v", err))
		return upload{}, "", false
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.RemoveAll(workDir)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store upload: %v", err))
		return upload{}, "", false
	}
	dst.Close()

	return upload{name: header.Filename, path: inPath}, workDir, true
}

// streamPDF sends the file at path as an inline PDF download.
func streamPDF(w http.ResponseWriter, path, filename string) {
	f, err := os.Open(path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to open result: %v", err))
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	io.Copy(w, f)
}

// suffixedName inserts suffix before the extension of name.
func suffixedName(name, suffix string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(filepath.Base(name), ext) + suffix + ext
}

// tocStatus maps TOC build failures to HTTP statuses: documents the core
// could read but not reconcile are 422, everything else is 500.
func tocStatus(err error) int {
	var titleErr *toc.TitleNotFoundError
	if errors.Is(err, toc.ErrHeadingNotFound) ||
		errors.Is(err, toc.ErrEmptyTitleList) ||
		errors.Is(err, toc.ErrNoConvergence) ||
		errors.As(err, &titleErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
