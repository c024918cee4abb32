package docmodel

import (
	"fmt"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// rowTolerance is the Y-coordinate tolerance (points) for grouping text
// fragments into the same visual line.
const rowTolerance = 3.0

// line is one visual text line with the font size of its leading run.
type line struct {
	text     string  // normalized text of the line
	fontSize float64 // font size of the line's first fragment
}

// NormalizeLine trims s and collapses internal whitespace runs to a
// single space.
func NormalizeLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// PageLines returns the normalized, non-empty text lines of the 0-based
// page, in reading order. Pages without text return an empty slice.
func (d *Document) PageLines(page int) ([]string, error) {
	rows, err := d.pageLines(page)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.text)
	}
	return out, nil
}

// PageText returns the extracted text of the 0-based page, one line per
// extracted visual line.
func (d *Document) PageText(page int) (string, error) {
	rows, err := d.pageLines(page)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.text)
	}
	return b.String(), nil
}

// FirstRun returns the text of the first line of the 0-based page along
// with the font size of that line's leading text run. ok is false when
// the page has no text at all (blank or image-only pages).
func (d *Document) FirstRun(page int) (text string, size float64, ok bool, err error) {
	rows, err := d.pageLines(page)
	if err != nil {
		return "", 0, false, err
	}
	if len(rows) == 0 {
		return "", 0, false, nil
	}
	return rows[0].text, rows[0].fontSize, true, nil
}

// pageLines extracts and caches the visual lines of the 0-based page.
func (d *Document) pageLines(page int) ([]line, error) {
	if cached, found := d.lines[page]; found {
		return cached, nil
	}

	p := d.reader.Page(page + 1)
	if p.V.IsNull() {
		d.lines[page] = nil
		return nil, nil
	}

	texts, err := pageContent(p)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text of page %d: %w", page+1, err)
	}

	rows := linesFromTexts(texts)
	d.lines[page] = rows
	return rows, nil
}

// pageContent reads the positioned text fragments of a page. The
// underlying library panics on malformed content streams, so the panic is
// converted into an error here.
func pageContent(p pdflib.Page) (texts []pdflib.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed content stream: %v", r)
		}
	}()
	return p.Content().Text, nil
}

// linesFromTexts groups positioned text fragments into visual lines:
// fragments within rowTolerance of each other on the Y axis form one
// line, lines are ordered top to bottom, fragments within a line left to
// right. Lines that are empty after normalization are dropped.
func linesFromTexts(texts []pdflib.Text) []line {
	type row struct {
		y     float64
		texts []pdflib.Text
	}

	var rows []row
	for _, t := range texts {
		placed := false
		for i := range rows {
			if t.Y >= rows[i].y-rowTolerance && t.Y <= rows[i].y+rowTolerance {
				rows[i].texts = append(rows[i].texts, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, row{y: t.Y, texts: []pdflib.Text{t}})
		}
	}

	// PDF user space has its origin at the bottom left, so the top line
	// has the largest Y.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	out := make([]line, 0, len(rows))
	for _, r := range rows {
		sort.SliceStable(r.texts, func(i, j int) bool { return r.texts[i].X < r.texts[j].X })

		var b strings.Builder
		for _, t := range r.texts {
			b.WriteString(t.S)
		}
		text := NormalizeLine(b.String())
		if text == "" {
			continue
		}
		out = append(out, line{text: text, fontSize: r.texts[0].FontSize})
	}
	return out
}
