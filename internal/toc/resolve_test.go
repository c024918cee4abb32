package toc

import (
	"errors"
	"testing"
)

func TestResolveOccurrences_DuplicateTitles(t *testing.T) {
	// "Frozen Clumps" appears on pages 3 and 5 (0-based); the listing
	// declares it twice, so the cursor must carry past the first match.
	doc := &fakeDoc{
		pages: [][]string{
			{"cover"},
			{"colophon"},
			{"Winter"},
			{"Frozen Clumps", "snow on the fence", "line"},
			{"interlude", "body text"},
			{"Frozen Clumps", "a second poem of the same name", "line"},
		},
	}

	entries, err := resolveOccurrences(doc, []string{"Winter", "Frozen Clumps", "Frozen Clumps"}, 2, 3)
	if err != nil {
		t.Fatalf("resolveOccurrences failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	if entries[1].OriginalPage != 4 {
		t.Errorf("first duplicate resolved to page %d, expected 4", entries[1].OriginalPage)
	}
	if entries[2].OriginalPage != 6 {
		t.Errorf("second duplicate resolved to page %d, expected 6", entries[2].OriginalPage)
	}

	for i := 1; i < len(entries); i++ {
		if entries[i].OriginalPage <= entries[i-1].OriginalPage {
			t.Errorf("pages not strictly increasing: %d then %d",
				entries[i-1].OriginalPage, entries[i].OriginalPage)
		}
	}
}

func TestResolveOccurrences_ChapterClassification(t *testing.T) {
	doc := &fakeDoc{
		pages: [][]string{
			{"Winter"},                           // standalone chapter page
			{"Frozen Clumps", "body", "body", "body"}, // poem page
		},
	}

	entries, err := resolveOccurrences(doc, []string{"Winter", "Frozen Clumps"}, 0, 3)
	if err != nil {
		t.Fatalf("resolveOccurrences failed: %v", err)
	}
	if entries[0].Level != LevelChapter {
		t.Errorf("expected Winter to be a chapter, got level %v", entries[0].Level)
	}
	if entries[1].Level != LevelEntry {
		t.Errorf("expected Frozen Clumps to be an entry, got level %v", entries[1].Level)
	}
}

func TestResolveOccurrences_TitleNotFound(t *testing.T) {
	doc := &fakeDoc{
		pages: [][]string{
			{"Poem A", "body"},
		},
	}

	_, err := resolveOccurrences(doc, []string{"Poem A", "Missing Poem"}, 0, 3)
	var notFound *TitleNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected TitleNotFoundError, got %v", err)
	}
	if notFound.Title != "Missing Poem" {
		t.Errorf("error names %q, expected Missing Poem", notFound.Title)
	}
}

func TestFindTitlePage_PrefersFullLineMatch(t *testing.T) {
	doc := &fakeDoc{
		pages: [][]string{
			{"as the Poem A manuscript shows", "body"}, // substring only
			{"Poem A", "body"},                         // standalone line
		},
	}

	// Substring on an earlier page still wins: the search is first page
	// wins, full-line preferred within a page.
	page, err := findTitlePage(doc, "Poem A", 0)
	if err != nil {
		t.Fatalf("findTitlePage failed: %v", err)
	}
	if page != 0 {
		t.Errorf("expected page 0, got %d", page)
	}
}

func TestIsChapterPage(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  bool
	}{
		{"bare title", []string{"Winter"}, true},
		{"title with ornament", []string{"*", "Winter"}, true},
		{"too many lines", []string{"Winter", "a", "b", "c"}, false},
		{"title only as substring", []string{"Winter poems follow"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &fakeDoc{pages: [][]string{tt.lines}}
			got, err := isChapterPage(doc, 0, "Winter", 3)
			if err != nil {
				t.Fatalf("isChapterPage failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("isChapterPage = %v, want %v", got, tt.want)
			}
		})
	}
}
