package toc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultHeading is the contents-page marker looked for when none is
// configured.
const DefaultHeading = "Contents"

// DefaultChapterMaxLines is the resolver's chapter-page heuristic: a
// matched page with at most this many lines, one of them the bare title,
// is a chapter heading page rather than a content page.
const DefaultChapterMaxLines = 3

// extractSource reads titles from the book's printed contents page and
// resolves each title to the page where its content begins.
type extractSource struct {
	heading         string
	startPage       int
	chapterMaxLines int
}

// NewExtractSource returns the extraction-mode title source. heading is
// the literal contents-page marker (case-sensitive, matched as a whole
// word); startPage is the 0-based page where occurrence search begins,
// skipping front matter.
func NewExtractSource(heading string, startPage, chapterMaxLines int) TitleSource {
	if heading == "" {
		heading = DefaultHeading
	}
	if chapterMaxLines <= 0 {
		chapterMaxLines = DefaultChapterMaxLines
	}
	return &extractSource{
		heading:         heading,
		startPage:       startPage,
		chapterMaxLines: chapterMaxLines,
	}
}

func (s *extractSource) BuildEntries(doc Document) ([]Entry, error) {
	titles, headingPage, err := s.extractTitles(doc)
	if err != nil {
		return nil, err
	}

	// The contents page lists every title, so occurrence search must
	// begin past it or each title would match its own TOC row.
	start := s.startPage
	if headingPage+1 > start {
		start = headingPage + 1
	}
	return resolveOccurrences(doc, titles, start, s.chapterMaxLines)
}

// extractTitles locates the contents page and collects the title lines
// printed below the heading. It returns the titles and the 0-based page
// the heading was found on.
func (s *extractSource) extractTitles(doc Document) ([]string, int, error) {
	page, err := s.findHeadingPage(doc)
	if err != nil {
		return nil, 0, err
	}

	lines, err := doc.PageLines(page)
	if err != nil {
		return nil, 0, err
	}

	var titles []string
	seenHeading := false
	for _, l := range lines {
		if !seenHeading {
			if l == s.heading {
				seenHeading = true
			}
			continue
		}
		// Stray page-number artifacts on the printed TOC.
		if isDigits(l) {
			continue
		}
		if strings.EqualFold(l, s.heading) {
			continue
		}
		titles = append(titles, l)
	}

	if len(titles) == 0 {
		return nil, 0, ErrEmptyTitleList
	}
	return titles, page, nil
}

// findHeadingPage returns the first page whose text contains the heading
// as a whole word.
func (s *extractSource) findHeadingPage(doc Document) (int, error) {
	for p := 0; p < doc.PageCount(); p++ {
		text, err := doc.PageText(p)
		if err != nil {
			return 0, err
		}
		if containsWord(text, s.heading) {
			return p, nil
		}
	}
	return 0, ErrHeadingNotFound
}

// containsWord reports whether word occurs in text with no letter or
// digit adjacent on either side. Boundaries are checked per rune, so
// non-ASCII headings ("Tartalom", "Énekek") match correctly.
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	for from := 0; from+len(word) <= len(text); {
		i := strings.Index(text[from:], word)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(word)
		if !isWordRune(lastRune(text[:start])) && !isWordRune(firstRune(text[end:])) {
			return true
		}
		from = start + 1
	}
	return false
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
