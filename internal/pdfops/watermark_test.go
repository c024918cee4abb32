package pdfops

import (
	"strings"
	"testing"
)

func TestWatermarkDesc(t *testing.T) {
	desc := watermarkDesc(WatermarkOptions{
		Text:     "SAMPLE",
		FontName: "Courier",
		Points:   48,
		Color:    "#ff0000",
		Opacity:  0.5,
		Rotation: 30,
	})

	for _, want := range []string{
		"fontname:Courier",
		"points:48",
		"fillcolor:#ff0000",
		"rotation:30",
		"opacity:0.5",
		"position:c",
		"scalefactor:1 abs",
	} {
		if !strings.Contains(desc, want) {
			t.Errorf("description %q missing %q", desc, want)
		}
	}
}

func TestWatermarkDesc_Defaults(t *testing.T) {
	desc := watermarkDesc(WatermarkOptions{Text: "SAMPLE"})

	for _, want := range []string{
		"fontname:Helvetica",
		"points:60",
		"fillcolor:#808080",
		"rotation:0",
		"opacity:0.3",
	} {
		if !strings.Contains(desc, want) {
			t.Errorf("description %q missing %q", desc, want)
		}
	}
}

func TestWatermarkDesc_ClampsOpacity(t *testing.T) {
	desc := watermarkDesc(WatermarkOptions{Text: "SAMPLE", Opacity: 1.7})
	if !strings.Contains(desc, "opacity:0.3") {
		t.Errorf("out-of-range opacity not defaulted: %q", desc)
	}
}

func TestStampText_EmptyText(t *testing.T) {
	if err := StampText("in.pdf", "out.pdf", WatermarkOptions{}); err == nil {
		t.Fatal("expected error for empty watermark text")
	}
}

func TestDefaultWatermarkOptions(t *testing.T) {
	opts := DefaultWatermarkOptions()
	if opts.Text != "SAMPLE" || opts.Rotation != 45 {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}
