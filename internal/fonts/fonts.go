// Package fonts resolves the two text rendering fonts the TOC renderer
// needs (a regular and a medium weight) from an ordered list of candidate
// TTF file pairs.
package fonts

import (
	"errors"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// ErrNoUsableFont indicates that no candidate font pair could be located
// and the built-in fallback is disabled.
var ErrNoUsableFont = errors.New("fonts: no usable font found among candidates")

// Family names registered with the PDF for resolved TTF candidates.
const (
	regularFamily = "toc-regular"
	mediumFamily  = "toc-medium"
)

// Candidate pairs a regular-weight and a medium-weight TTF file.
type Candidate struct {
	Regular string
	Medium  string
}

// Face identifies one rendering font: either a TTF file on disk or one of
// the drawing library's built-in core fonts (empty Path).
type Face struct {
	Family string
	Style  string
	Path   string
}

// Set holds the two faces used for TOC rendering.
type Set struct {
	Regular Face
	Medium  Face
}

// Builtin returns the drawing library's built-in serif faces. These carry
// the standard core fonts, so no font files are required.
func Builtin() Set {
	return Set{
		Regular: Face{Family: "Times", Style: ""},
		Medium:  Face{Family: "Times", Style: "B"},
	}
}

// Resolve probes candidates in priority order and returns the first pair
// whose files both exist. When no pair resolves, allowBuiltin selects the
// built-in faces instead of failing with ErrNoUsableFont.
func Resolve(candidates []Candidate, allowBuiltin bool) (Set, error) {
	for _, c := range candidates {
		if c.Regular == "" || c.Medium == "" {
			continue
		}
		if fileExists(c.Regular) && fileExists(c.Medium) {
			return Set{
				Regular: Face{Family: regularFamily, Path: c.Regular},
				Medium:  Face{Family: mediumFamily, Path: c.Medium},
			}, nil
		}
	}
	if allowBuiltin {
		return Builtin(), nil
	}
	return Set{}, ErrNoUsableFont
}

// Register adds any TTF faces of the set to the given PDF. Must be called
// before the faces are selected with SetFont.
func (s Set) Register(pdf *gofpdf.Fpdf) {
	if s.Regular.Path != "" {
		pdf.AddUTF8Font(s.Regular.Family, s.Regular.Style, s.Regular.Path)
	}
	if s.Medium.Path != "" {
		pdf.AddUTF8Font(s.Medium.Family, s.Medium.Style, s.Medium.Path)
	}
}

// Translator returns the text translation applied before drawing. TTF
// faces take UTF-8 directly; the built-in core fonts are cp1252 and need
// the library's translator.
func (s Set) Translator(pdf *gofpdf.Fpdf) func(string) string {
	if s.Regular.Path != "" {
		return func(text string) string { return text }
	}
	return pdf.UnicodeTranslatorFromDescriptor("")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
