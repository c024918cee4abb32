// Package toc builds an accurately paginated table of contents for an
// existing PDF book. Titles come either from a printed contents page
// (extraction mode) or from font-size heuristics applied to every page
// (scan mode); final page numbers account for the generated TOC pages
// shifting the original pagination.
package toc

// Level classifies a TOC row.
type Level int

const (
	// LevelChapter is a top-level heading row.
	LevelChapter Level = iota
	// LevelEntry is a nested item row, e.g. a poem within a chapter.
	LevelEntry
)

// unresolvedPage marks a FinalPage the pagination solver has not computed
// yet.
const unresolvedPage = -1

// Entry is a single table-of-contents row.
type Entry struct {
	// Title is the normalized display text. Never empty.
	Title string
	// OriginalPage is the 1-based page in the source document where the
	// entry's content begins.
	OriginalPage int
	// FinalPage is the 1-based page in the assembled output document.
	// -1 until the pagination solver resolves it.
	FinalPage int
	// Level controls indentation, face and row height in rendering.
	Level Level
}

// Document is the read-only view of a paged document the TOC builder
// consumes. 0-based page indices throughout.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int
	// PageText returns the extracted text of a page.
	PageText(page int) (string, error)
	// PageLines returns the normalized, non-empty text lines of a page
	// in reading order.
	PageLines(page int) ([]string, error)
	// FirstRun returns the text of the first line of a page and the font
	// size of that line's leading run. ok is false for pages without
	// text.
	FirstRun(page int) (text string, size float64, ok bool, err error)
	// PageSize returns the page width and height in points.
	PageSize() (width, height float64)
}
