package toc

import (
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/versbook/folio/internal/fonts"
)

// mm converts millimeters to PDF points.
const mm = 72.0 / 25.4

// PageSize is a physical page size in points.
type PageSize struct {
	Width  float64
	Height float64
}

// Layout holds the TOC page metrics. All lengths are in points, font
// sizes in typographic points.
type Layout struct {
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	HeadingSize float64 // heading font size
	HeadingDrop float64 // vertical space consumed by the heading

	ChapterSize      float64 // chapter row font size
	ChapterRowHeight float64
	ChapterGap       float64 // extra vertical gap before a chapter row

	EntrySize      float64 // entry row font size
	EntryRowHeight float64
	EntryIndent    float64

	PageNumGap float64 // gap between the dot leader and the page number
	LeaderGap  float64 // gap between the title and the dot leader
	LeaderStep float64 // dot spacing, as a multiple of the dot glyph width
}

// DefaultLayout returns the metrics of the observed book template.
func DefaultLayout() Layout {
	return Layout{
		MarginLeft:   22 * mm,
		MarginRight:  22 * mm,
		MarginTop:    25 * mm,
		MarginBottom: 30 * mm,

		HeadingSize: 18,
		HeadingDrop: 12 * mm,

		ChapterSize:      12.5,
		ChapterRowHeight: 7.2 * mm,
		ChapterGap:       2.5 * mm,

		EntrySize:      11.5,
		EntryRowHeight: 6.2 * mm,
		EntryIndent:    10 * mm,

		PageNumGap: 6 * mm,
		LeaderGap:  3 * mm,
		LeaderStep: 1.35,
	}
}

// Renderer lays out TOC pages. The zero Layout means DefaultLayout.
type Renderer struct {
	Fonts  fonts.Set
	Layout Layout
}

// RenderPages draws the entries as one or more TOC pages of the given
// size and writes the result to outPath. It returns the number of pages
// used, which feeds the pagination solver.
func (r *Renderer) RenderPages(entries []Entry, outPath string, size PageSize, heading string) (int, error) {
	lay := r.Layout
	if lay == (Layout{}) {
		lay = DefaultLayout()
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})
	pdf.SetAutoPageBreak(false, 0)

	r.Fonts.Register(pdf)
	tr := r.Fonts.Translator(pdf)

	left := lay.MarginLeft
	right := size.Width - lay.MarginRight
	bottom := size.Height - lay.MarginBottom

	// startPage opens a new page, draws the centered heading and returns
	// the baseline for the first row.
	startPage := func() float64 {
		pdf.AddPage()
		pdf.SetFont(r.Fonts.Medium.Family, r.Fonts.Medium.Style, lay.HeadingSize)
		h := tr(heading)
		pdf.Text((size.Width-pdf.GetStringWidth(h))/2, lay.MarginTop, h)
		return lay.MarginTop + lay.HeadingDrop
	}

	y := startPage()
	for _, e := range entries {
		face := r.Fonts.Regular
		fontSize := lay.EntrySize
		indent := lay.EntryIndent
		rowHeight := lay.EntryRowHeight

		if e.Level == LevelChapter {
			y += lay.ChapterGap
			face = r.Fonts.Medium
			fontSize = lay.ChapterSize
			indent = 0
			rowHeight = lay.ChapterRowHeight
		}

		if y > bottom {
			y = startPage()
		}

		pdf.SetFont(face.Family, face.Style, fontSize)

		title := tr(e.Title)
		num := strconv.Itoa(e.FinalPage)
		titleX := left + indent
		numX := right - pdf.GetStringWidth(num)

		pdf.Text(titleX, y, title)
		pdf.Text(numX, y, num)
		drawLeader(pdf,
			titleX+pdf.GetStringWidth(title)+lay.LeaderGap,
			numX-lay.PageNumGap,
			y, lay.LeaderStep)

		y += rowHeight
	}

	pages := pdf.PageCount()
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return 0, fmt.Errorf("failed to write TOC pages: %w", err)
	}
	return pages, nil
}

// drawLeader fills x1..x2 at baseline y with dots spaced by step times
// the dot glyph width, in the currently selected font. A non-positive gap
// draws nothing: the title and page number simply meet without a leader.
func drawLeader(pdf *gofpdf.Fpdf, x1, x2, y, step float64) {
	if x2 <= x1 {
		return
	}
	dotWidth := pdf.GetStringWidth(".")
	if dotWidth <= 0 {
		return
	}
	for x := x1; x < x2; x += dotWidth * step {
		pdf.Text(x, y, ".")
	}
}
