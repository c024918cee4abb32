package toc

import (
	"errors"
	"fmt"
)

var (
	// ErrHeadingNotFound indicates no page contains the configured TOC
	// heading marker.
	ErrHeadingNotFound = errors.New("no page containing the TOC heading found")

	// ErrEmptyTitleList indicates the heading page was found but yielded
	// zero usable titles. A TOC with zero entries means extraction
	// failed, not that the book is empty.
	ErrEmptyTitleList = errors.New("extracted zero titles from the TOC heading page")

	// ErrNoConvergence indicates the pagination solver hit its iteration
	// cap without the rendered TOC page count stabilizing.
	ErrNoConvergence = errors.New("TOC page numbering did not converge")
)

// TitleNotFoundError reports a declared title with no matching page at or
// after the search cursor.
type TitleNotFoundError struct {
	Title string
}

func (e *TitleNotFoundError) Error() string {
	return fmt.Sprintf("no page found for title %q", e.Title)
}
