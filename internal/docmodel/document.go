// Package docmodel provides a read-only, page-oriented view over a PDF
// file: page count, extracted text lines, font metadata for the opening
// line of each page, and page geometry.
package docmodel

import (
	"fmt"
	"os"

	pdflib "github.com/ledongthuc/pdf"
)

// Default page size (A4 portrait, points) when a PDF carries no usable
// MediaBox.
const (
	defaultPageWidth  = 595.28
	defaultPageHeight = 841.89
)

// Document wraps an open PDF file.
type Document struct {
	file   *os.File
	reader *pdflib.Reader

	width  float64
	height float64

	// per-page extracted line cache; content stream parsing is the
	// expensive part and the occurrence resolver revisits pages.
	lines map[int][]line
}

// Open opens the PDF at path.
func Open(path string) (*Document, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}

	d := &Document{
		file:   f,
		reader: r,
		lines:  make(map[int][]line),
	}
	d.width, d.height = d.mediaBoxSize()

	return d, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.file.Close()
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// PageSize returns the width and height of the document's first page in
// points.
func (d *Document) PageSize() (width, height float64) {
	return d.width, d.height
}

// mediaBoxSize reads the MediaBox of page 1, walking up the page tree for
// inherited values. Falls back to A4 when nothing usable is found.
func (d *Document) mediaBoxSize() (float64, float64) {
	if d.reader.NumPage() == 0 {
		return defaultPageWidth, defaultPageHeight
	}

	page := d.reader.Page(1)
	if page.V.IsNull() {
		return defaultPageWidth, defaultPageHeight
	}

	box := page.V.Key("MediaBox")
	node := page.V
	for box.IsNull() {
		node = node.Key("Parent")
		if node.IsNull() {
			break
		}
		box = node.Key("MediaBox")
	}
	if box.IsNull() || box.Len() < 4 {
		return defaultPageWidth, defaultPageHeight
	}

	x1 := box.Index(0).Float64()
	y1 := box.Index(1).Float64()
	x2 := box.Index(2).Float64()
	y2 := box.Index(3).Float64()

	w := x2 - x1
	h := y2 - y1
	if w <= 0 || h <= 0 {
		return defaultPageWidth, defaultPageHeight
	}
	return w, h
}
