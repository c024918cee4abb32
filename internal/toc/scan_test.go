package toc

import "testing"

func TestScanSource_BuildEntries(t *testing.T) {
	doc := &fakeDoc{
		pages: make([][]string, 7),
		runs: []fakeRun{
			{"My Book", 30},        // 0: cover, before start page
			{"Published 1984", 10}, // 1: colophon, before start page
			{"Winter", 26},         // 2: chapter heading
			{"Frozen Clumps", 18},  // 3: poem title
			{"", 0},                // 4: blank page
			{"and the snow fell", 12.5}, // 5: body continuation
			{"First Thaw", 18.75},  // 6: poem title
		},
	}

	src := NewScanSource(2, nil)
	entries, err := src.BuildEntries(doc)
	if err != nil {
		t.Fatalf("BuildEntries failed: %v", err)
	}

	want := []Entry{
		{Title: "Winter", OriginalPage: 3, FinalPage: unresolvedPage, Level: LevelChapter},
		{Title: "Frozen Clumps", OriginalPage: 4, FinalPage: unresolvedPage, Level: LevelEntry},
		{Title: "First Thaw", OriginalPage: 7, FinalPage: unresolvedPage, Level: LevelEntry},
	}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(entries), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestScanSource_NormalizesTitles(t *testing.T) {
	doc := &fakeDoc{
		pages: make([][]string, 1),
		runs: []fakeRun{
			{"  Frozen   Clumps ", 18},
		},
	}

	src := NewScanSource(0, nil)
	entries, err := src.BuildEntries(doc)
	if err != nil {
		t.Fatalf("BuildEntries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Frozen Clumps" {
		t.Errorf("expected normalized title Frozen Clumps, got %v", entries)
	}
}

func TestThresholdPolicy(t *testing.T) {
	classify := ThresholdPolicy(24, 16)

	tests := []struct {
		size      float64
		wantLevel Level
		wantOK    bool
	}{
		{26, LevelChapter, true},
		{24.01, LevelChapter, true},
		{24, LevelEntry, true}, // boundary is exclusive
		{18.75, LevelEntry, true},
		{16, 0, false},
		{12.5, 0, false},
	}
	for _, tt := range tests {
		level, ok := classify(tt.size)
		if ok != tt.wantOK || (ok && level != tt.wantLevel) {
			t.Errorf("classify(%g) = (%v, %v), want (%v, %v)",
				tt.size, level, ok, tt.wantLevel, tt.wantOK)
		}
	}
}
