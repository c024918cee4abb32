package toc

// DefaultMaxPasses caps the pagination solver's correction passes.
const DefaultMaxPasses = 5

// InsertPolicy decides where generated TOC pages go in the assembled
// output document.
type InsertPolicy struct {
	// afterPage is the 1-based source page after which the TOC is
	// spliced; ignored when append is set.
	afterPage int
	append    bool
}

// Append places the TOC after the last source page. No entry shifts.
func Append() InsertPolicy {
	return InsertPolicy{append: true}
}

// InsertAfter splices the TOC after the given 1-based source page. Every
// entry on a later page shifts down by the TOC page count.
func InsertAfter(page int) InsertPolicy {
	return InsertPolicy{afterPage: page}
}

// resolveAfter returns the effective 1-based insertion point for a source
// document of pageCount pages.
func (p InsertPolicy) resolveAfter(pageCount int) int {
	if p.append || p.afterPage >= pageCount {
		return pageCount
	}
	if p.afterPage < 0 {
		return 0
	}
	return p.afterPage
}

// renderFunc renders the TOC for the given entries and reports how many
// pages it used.
type renderFunc func(entries []Entry) (int, error)

// solvePagination computes every entry's final page number. The rendered
// TOC page count depends on layout, but inserting those pages shifts the
// numbers being laid out, so the solver renders, corrects, and re-renders
// until the page count stabilizes. maxPasses bounds the loop; hitting the
// cap returns ErrNoConvergence rather than accepting an unconfirmed
// result.
//
// The correction is recomputed from OriginalPage on every pass, so
// solving the same inputs twice yields identical final pages.
func solvePagination(entries []Entry, insertAfter, maxPasses int, render renderFunc) (int, error) {
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	// Placeholder numbers for the first layout pass.
	for i := range entries {
		entries[i].FinalPage = entries[i].OriginalPage
	}

	pages, err := render(entries)
	if err != nil {
		return 0, err
	}

	for pass := 0; pass < maxPasses; pass++ {
		shiftFinalPages(entries, insertAfter, pages)

		confirmed, err := render(entries)
		if err != nil {
			return 0, err
		}
		if confirmed == pages {
			return pages, nil
		}
		pages = confirmed
	}

	return 0, ErrNoConvergence
}

// shiftFinalPages recomputes every entry's final page for a TOC of
// tocPages pages inserted after the 1-based page insertAfter.
func shiftFinalPages(entries []Entry, insertAfter, tocPages int) {
	for i := range entries {
		if entries[i].OriginalPage > insertAfter {
			entries[i].FinalPage = entries[i].OriginalPage + tocPages
		} else {
			entries[i].FinalPage = entries[i].OriginalPage
		}
	}
}
