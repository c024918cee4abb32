package toc

import "github.com/versbook/folio/internal/docmodel"

// DefaultStartPage skips the cover and colophon when scanning or
// resolving occurrences (0-based).
const DefaultStartPage = 2

// scanSource infers TOC entries by walking every content page and
// classifying the font size of its opening text run. This models "a page
// opens with its own heading, set larger than body text" and is
// deliberately template-specific; the thresholds live in the policy, not
// here.
type scanSource struct {
	startPage int
	classify  LevelPolicy
}

// NewScanSource returns the scan-mode title source. startPage is the
// 0-based first page to inspect; classify may be nil for the default
// thresholds.
func NewScanSource(startPage int, classify LevelPolicy) TitleSource {
	if classify == nil {
		classify = ThresholdPolicy(DefaultChapterMinSize, DefaultEntryMinSize)
	}
	return &scanSource{startPage: startPage, classify: classify}
}

func (s *scanSource) BuildEntries(doc Document) ([]Entry, error) {
	var entries []Entry

	for p := s.startPage; p < doc.PageCount(); p++ {
		text, size, ok, err := doc.FirstRun(p)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Blank and image-only pages are expected, not an error.
			continue
		}

		title := docmodel.NormalizeLine(text)
		if title == "" {
			continue
		}

		level, ok := s.classify(size)
		if !ok {
			// Body-text continuation page.
			continue
		}

		entries = append(entries, Entry{
			Title:        title,
			OriginalPage: p + 1,
			FinalPage:    unresolvedPage,
			Level:        level,
		})
	}

	return entries, nil
}
