package toc

import "strings"

// resolveOccurrences maps titles to the pages where they occur, in title
// order. The search cursor advances past each match, so duplicate titles
// resolve to distinct, strictly increasing pages.
func resolveOccurrences(doc Document, titles []string, startPage, chapterMaxLines int) ([]Entry, error) {
	entries := make([]Entry, 0, len(titles))
	cursor := startPage

	for _, title := range titles {
		page, err := findTitlePage(doc, title, cursor)
		if err != nil {
			return nil, err
		}

		level := LevelEntry
		chapter, err := isChapterPage(doc, page, title, chapterMaxLines)
		if err != nil {
			return nil, err
		}
		if chapter {
			level = LevelChapter
		}

		entries = append(entries, Entry{
			Title:        title,
			OriginalPage: page + 1,
			FinalPage:    unresolvedPage,
			Level:        level,
		})
		cursor = page + 1
	}

	return entries, nil
}

// findTitlePage returns the first page at or after cursor where title
// appears, preferring a standalone line match over a substring match on
// the same page. No backtracking, no scoring.
func findTitlePage(doc Document, title string, cursor int) (int, error) {
	for p := cursor; p < doc.PageCount(); p++ {
		lines, err := doc.PageLines(p)
		if err != nil {
			return 0, err
		}
		for _, l := range lines {
			if l == title {
				return p, nil
			}
		}
		for _, l := range lines {
			if strings.Contains(l, title) {
				return p, nil
			}
		}
	}
	return 0, &TitleNotFoundError{Title: title}
}

// isChapterPage reports whether the matched page is a standalone chapter
// heading page: at most maxLines non-empty lines, one of them exactly the
// title. Poem pages carry body text below the title and fail the line
// limit.
func isChapterPage(doc Document, page int, title string, maxLines int) (bool, error) {
	lines, err := doc.PageLines(page)
	if err != nil {
		return false, err
	}
	if len(lines) > maxLines {
		return false, nil
	}
	for _, l := range lines {
		if l == title {
			return true, nil
		}
	}
	return false, nil
}
