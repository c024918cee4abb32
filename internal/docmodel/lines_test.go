package docmodel

import (
	"testing"

	pdflib "github.com/ledongthuc/pdf"
)

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Frozen   Clumps ", "Frozen Clumps"},
		{"Winter", "Winter"},
		{"\tPoem  A\n", "Poem  A"},
		{"   ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeLine(tt.in); got != tt.want {
			t.Errorf("NormalizeLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLinesFromTexts_GroupsByRow(t *testing.T) {
	// Two fragments on the same visual row (within tolerance), one row
	// below. PDF Y grows upward, so the larger Y is the top line.
	texts := []pdflib.Text{
		{S: "Frozen ", X: 100, Y: 700, FontSize: 18.75},
		{S: "Clumps", X: 160, Y: 701.5, FontSize: 18.75},
		{S: "snow on the fence", X: 100, Y: 650, FontSize: 12.5},
	}

	rows := linesFromTexts(texts)
	if len(rows) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(rows), rows)
	}
	if rows[0].text != "Frozen Clumps" {
		t.Errorf("top line = %q, want Frozen Clumps", rows[0].text)
	}
	if rows[0].fontSize != 18.75 {
		t.Errorf("top line font size = %g, want 18.75", rows[0].fontSize)
	}
	if rows[1].text != "snow on the fence" {
		t.Errorf("second line = %q", rows[1].text)
	}
}

func TestLinesFromTexts_OrdersFragmentsByX(t *testing.T) {
	// Fragments arrive out of reading order within a row.
	texts := []pdflib.Text{
		{S: "Clumps", X: 160, Y: 700, FontSize: 18},
		{S: "Frozen ", X: 100, Y: 700, FontSize: 18},
	}

	rows := linesFromTexts(texts)
	if len(rows) != 1 {
		t.Fatalf("expected 1 line, got %d", len(rows))
	}
	if rows[0].text != "Frozen Clumps" {
		t.Errorf("line = %q, want Frozen Clumps", rows[0].text)
	}
}

func TestLinesFromTexts_OrdersRowsTopDown(t *testing.T) {
	texts := []pdflib.Text{
		{S: "bottom", X: 100, Y: 100, FontSize: 12},
		{S: "top", X: 100, Y: 700, FontSize: 12},
		{S: "middle", X: 100, Y: 400, FontSize: 12},
	}

	rows := linesFromTexts(texts)
	want := []string{"top", "middle", "bottom"}
	if len(rows) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(rows))
	}
	for i, w := range want {
		if rows[i].text != w {
			t.Errorf("line %d = %q, want %q", i, rows[i].text, w)
		}
	}
}

func TestLinesFromTexts_DropsWhitespaceOnlyRows(t *testing.T) {
	texts := []pdflib.Text{
		{S: "   ", X: 100, Y: 700, FontSize: 12},
		{S: "Winter", X: 100, Y: 650, FontSize: 26},
	}

	rows := linesFromTexts(texts)
	if len(rows) != 1 {
		t.Fatalf("expected 1 line, got %d", len(rows))
	}
	if rows[0].text != "Winter" || rows[0].fontSize != 26 {
		t.Errorf("line = %+v, want Winter at 26pt", rows[0])
	}
}

func TestLinesFromTexts_Empty(t *testing.T) {
	if rows := linesFromTexts(nil); len(rows) != 0 {
		t.Errorf("expected no lines, got %v", rows)
	}
}
