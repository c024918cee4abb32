package toc

import "fmt"

// Mode selects how TOC titles are obtained from the source document.
type Mode string

const (
	// ModeExtract reads titles from an existing printed contents page
	// and resolves each to its occurrence page.
	ModeExtract Mode = "extract"
	// ModeScan infers titles by classifying every page's opening line by
	// font size.
	ModeScan Mode = "scan"
)

// TitleSource produces ordered TOC entries from a document.
type TitleSource interface {
	BuildEntries(doc Document) ([]Entry, error)
}

// LevelPolicy classifies a page-opening text run by its font size.
// ok is false when the run is body text and the page contributes no
// entry.
type LevelPolicy func(size float64) (level Level, ok bool)

// Default font-size thresholds for the scan-mode classifier, matching the
// observed typesetting template (chapter headings ~26pt, poem titles
// ~18.75pt, body text ~12.5pt).
const (
	DefaultChapterMinSize = 24.0
	DefaultEntryMinSize   = 16.0
)

// ThresholdPolicy returns a LevelPolicy with two fixed size thresholds:
// sizes above chapterMin are chapters, sizes above entryMin are entries,
// anything else is body text.
func ThresholdPolicy(chapterMin, entryMin float64) LevelPolicy {
	return func(size float64) (Level, bool) {
		switch {
		case size > chapterMin:
			return LevelChapter, true
		case size > entryMin:
			return LevelEntry, true
		default:
			return 0, false
		}
	}
}

// NewTitleSource returns the TitleSource for the given mode.
func NewTitleSource(mode Mode, cfg Config) (TitleSource, error) {
	switch mode {
	case ModeExtract, "":
		return NewExtractSource(cfg.Heading, cfg.StartPage, cfg.ChapterMaxLines), nil
	case ModeScan:
		return NewScanSource(cfg.StartPage, cfg.Classify), nil
	default:
		return nil, fmt.Errorf("unknown title source mode %q", mode)
	}
}
