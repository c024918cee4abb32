package pdfops

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// WatermarkOptions describes the text stamp applied to every page.
type WatermarkOptions struct {
	Text     string
	FontName string  // core PDF font name
	Points   float64 // font size
	Color    string  // hex fill color, e.g. "#808080"
	Opacity  float64 // 0..1
	Rotation float64 // degrees; 0 keeps the text horizontal
}

// DefaultWatermarkOptions returns the classic sample stamp: large gray
// translucent text, centered, rotated diagonally.
func DefaultWatermarkOptions() WatermarkOptions {
	return WatermarkOptions{
		Text:     "SAMPLE",
		FontName: "Helvetica",
		Points:   60,
		Color:    "#808080",
		Opacity:  0.3,
		Rotation: 45,
	}
}

// StampText overlays the configured text on every page of the document at
// sourcePath and writes the result to outPath. Stateless per page; the
// source file is left untouched.
func StampText(sourcePath, outPath string, opts WatermarkOptions) error {
	if opts.Text == "" {
		return fmt.Errorf("watermark text must not be empty")
	}

	wm, err := api.TextWatermark(opts.Text, watermarkDesc(opts), true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("failed to build watermark: %w", err)
	}

	if err := api.AddWatermarksFile(sourcePath, outPath, nil, wm, nil); err != nil {
		return fmt.Errorf("failed to stamp watermark: %w", err)
	}
	return nil
}

// watermarkDesc renders the options as a pdfcpu watermark description
// string.
func watermarkDesc(opts WatermarkOptions) string {
	o := opts
	if o.FontName == "" {
		o.FontName = "Helvetica"
	}
	if o.Points <= 0 {
		o.Points = 60
	}
	if o.Color == "" {
		o.Color = "#808080"
	}
	if o.Opacity <= 0 || o.Opacity > 1 {
		o.Opacity = 0.3
	}
	return fmt.Sprintf(
		"fontname:%s, points:%.0f, scalefactor:1 abs, fillcolor:%s, rotation:%g, opacity:%g, position:c",
		o.FontName, o.Points, o.Color, o.Rotation, o.Opacity,
	)
}
