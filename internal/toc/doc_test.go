package toc

import "strings"

// fakeRun is the opening line of a fake page with its font size.
type fakeRun struct {
	text string
	size float64
}

// fakeDoc is an in-memory Document for tests. Each page is a slice of
// normalized lines; runs optionally carries the per-page opening run for
// scan-mode tests.
type fakeDoc struct {
	pages  [][]string
	runs   []fakeRun
	width  float64
	height float64
}

func (d *fakeDoc) PageCount() int { return len(d.pages) }

func (d *fakeDoc) PageText(page int) (string, error) {
	return strings.Join(d.pages[page], "\n"), nil
}

func (d *fakeDoc) PageLines(page int) ([]string, error) {
	return d.pages[page], nil
}

func (d *fakeDoc) FirstRun(page int) (string, float64, bool, error) {
	if d.runs != nil {
		r := d.runs[page]
		if r.text == "" {
			return "", 0, false, nil
		}
		return r.text, r.size, true, nil
	}
	if len(d.pages[page]) == 0 {
		return "", 0, false, nil
	}
	return d.pages[page][0], 12, true, nil
}

func (d *fakeDoc) PageSize() (float64, float64) {
	if d.width == 0 {
		return 420, 595
	}
	return d.width, d.height
}
