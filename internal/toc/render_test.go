package toc

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/versbook/folio/internal/fonts"
)

// a5 is the trade size of the observed book template.
var a5 = PageSize{Width: 420, Height: 595}

func testEntries(n int) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{
			Title:        fmt.Sprintf("Poem %d", i+1),
			OriginalPage: i + 3,
			FinalPage:    i + 3,
			Level:        LevelEntry,
		}
	}
	return entries
}

func TestRenderPages_SinglePage(t *testing.T) {
	r := &Renderer{Fonts: fonts.Builtin()}
	out := filepath.Join(t.TempDir(), "toc.pdf")

	pages, err := r.RenderPages(testEntries(10), out, a5, "Contents")
	if err != nil {
		t.Fatalf("RenderPages failed: %v", err)
	}
	if pages != 1 {
		t.Errorf("expected 1 page for 10 entries, got %d", pages)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestRenderPages_BreaksToSecondPage(t *testing.T) {
	r := &Renderer{Fonts: fonts.Builtin()}
	out := filepath.Join(t.TempDir(), "toc.pdf")

	pages, err := r.RenderPages(testEntries(40), out, a5, "Contents")
	if err != nil {
		t.Fatalf("RenderPages failed: %v", err)
	}
	if pages != 2 {
		t.Errorf("expected 2 pages for 40 entries, got %d", pages)
	}
}

func TestRenderPages_WithChapters(t *testing.T) {
	entries := []Entry{
		{Title: "Winter", OriginalPage: 3, FinalPage: 3, Level: LevelChapter},
		{Title: "Frozen Clumps", OriginalPage: 4, FinalPage: 4, Level: LevelEntry},
		{Title: "First Thaw", OriginalPage: 9, FinalPage: 9, Level: LevelEntry},
	}

	r := &Renderer{Fonts: fonts.Builtin()}
	out := filepath.Join(t.TempDir(), "toc.pdf")

	pages, err := r.RenderPages(entries, out, a5, "Tartalom")
	if err != nil {
		t.Fatalf("RenderPages failed: %v", err)
	}
	if pages != 1 {
		t.Errorf("expected 1 page, got %d", pages)
	}
}

func TestRenderPages_LongTitleLeavesNoLeader(t *testing.T) {
	// A title long enough to reach the page number column must not draw
	// a leader, and must not fail.
	entries := []Entry{
		{
			Title:        "An Exceptionally Long Poem Title That Runs Across The Whole Measure Of The Page",
			OriginalPage: 3,
			FinalPage:    3,
			Level:        LevelEntry,
		},
	}

	r := &Renderer{Fonts: fonts.Builtin()}
	out := filepath.Join(t.TempDir(), "toc.pdf")

	if _, err := r.RenderPages(entries, out, a5, "Contents"); err != nil {
		t.Fatalf("RenderPages failed: %v", err)
	}
}
