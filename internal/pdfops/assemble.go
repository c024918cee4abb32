// Package pdfops wraps the PDF manipulation operations folio needs:
// concatenating documents and stamping text watermarks.
package pdfops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Assemble concatenates the source document and the rendered TOC document
// into outPath. afterPage is the 1-based source page after which the TOC
// pages go: 0 puts them first, the source page count (or more) appends
// them. Page numbering was resolved upstream; this is pure concatenation.
func Assemble(sourcePath, tocPath, outPath string, afterPage int) error {
	pageCount, err := api.PageCountFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to count pages of %s: %w", sourcePath, err)
	}

	switch {
	case afterPage >= pageCount:
		return merge(outPath, sourcePath, tocPath)
	case afterPage <= 0:
		return merge(outPath, tocPath, sourcePath)
	}

	// Splice: pages 1..afterPage, the TOC, then the rest.
	tmpDir, err := os.MkdirTemp("", "folio-assemble-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "prefix.pdf")
	suffix := filepath.Join(tmpDir, "suffix.pdf")

	if err := api.CollectFile(sourcePath, prefix, []string{fmt.Sprintf("1-%d", afterPage)}, nil); err != nil {
		return fmt.Errorf("failed to collect pages 1-%d: %w", afterPage, err)
	}
	if err := api.CollectFile(sourcePath, suffix, []string{fmt.Sprintf("%d-%d", afterPage+1, pageCount)}, nil); err != nil {
		return fmt.Errorf("failed to collect pages %d-%d: %w", afterPage+1, pageCount, err)
	}

	return merge(outPath, prefix, tocPath, suffix)
}

func merge(outPath string, inPaths ...string) error {
	if err := api.MergeCreateFile(inPaths, outPath, false, nil); err != nil {
		return fmt.Errorf("failed to merge documents: %w", err)
	}
	return nil
}
