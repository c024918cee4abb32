package config

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/versbook/folio/internal/toc"
	"gopkg.in/yaml.v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != "extract" {
		t.Errorf("mode = %q, want extract", cfg.Mode)
	}
	if cfg.TOC.Heading != "Contents" {
		t.Errorf("heading = %q, want Contents", cfg.TOC.Heading)
	}
	if cfg.Scan.ChapterMinSize != 24 || cfg.Scan.EntryMinSize != 16 {
		t.Errorf("scan thresholds = %g/%g, want 24/16",
			cfg.Scan.ChapterMinSize, cfg.Scan.EntryMinSize)
	}
	if cfg.Insert.Policy != "append" {
		t.Errorf("insert policy = %q, want append", cfg.Insert.Policy)
	}
	if !cfg.Fonts.AllowBuiltin {
		t.Error("expected builtin font fallback enabled by default")
	}
	if cfg.Watermark.Text != "SAMPLE" {
		t.Errorf("watermark text = %q, want SAMPLE", cfg.Watermark.Text)
	}
}

func TestConfig_InsertPolicy(t *testing.T) {
	t.Run("append", func(t *testing.T) {
		cfg := &Config{Insert: Insert{Policy: "append"}}
		if _, err := cfg.InsertPolicy(); err != nil {
			t.Errorf("append failed: %v", err)
		}
	})

	t.Run("empty means append", func(t *testing.T) {
		cfg := &Config{}
		if _, err := cfg.InsertPolicy(); err != nil {
			t.Errorf("empty policy failed: %v", err)
		}
	})

	t.Run("after-page", func(t *testing.T) {
		cfg := &Config{Insert: Insert{Policy: "after-page", AfterPage: 2}}
		if _, err := cfg.InsertPolicy(); err != nil {
			t.Errorf("after-page failed: %v", err)
		}
	})

	t.Run("negative after-page rejected", func(t *testing.T) {
		cfg := &Config{Insert: Insert{Policy: "after-page", AfterPage: -1}}
		if _, err := cfg.InsertPolicy(); err == nil {
			t.Error("expected error for negative after_page")
		}
	})

	t.Run("unknown policy rejected", func(t *testing.T) {
		cfg := &Config{Insert: Insert{Policy: "sideways"}}
		if _, err := cfg.InsertPolicy(); err == nil {
			t.Error("expected error for unknown policy")
		}
	})
}

func TestLayout_ToPoints(t *testing.T) {
	l := Layout{
		MarginLeftMM:  25.4, // exactly one inch
		HeadingPoints: 18,
		LeaderStep:    1.35,
	}

	pts := l.toPoints()
	if math.Abs(pts.MarginLeft-72) > 1e-9 {
		t.Errorf("25.4mm = %gpt, want 72pt", pts.MarginLeft)
	}
	if pts.HeadingSize != 18 {
		t.Errorf("font sizes must pass through unchanged, got %g", pts.HeadingSize)
	}
	if pts.LeaderStep != 1.35 {
		t.Errorf("dimensionless ratios must pass through unchanged, got %g", pts.LeaderStep)
	}
}

func TestConfig_BuilderConfig(t *testing.T) {
	logger := slog.Default()

	t.Run("extract mode uses resolve start page", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Resolve.StartPage = 4
		cfg.Scan.StartPage = 9

		bc, err := cfg.BuilderConfig(nil, logger)
		if err != nil {
			t.Fatalf("BuilderConfig failed: %v", err)
		}
		if bc.Mode != toc.ModeExtract {
			t.Errorf("mode = %q", bc.Mode)
		}
		if bc.StartPage != 4 {
			t.Errorf("start page = %d, want 4", bc.StartPage)
		}
	})

	t.Run("scan mode uses scan start page", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Mode = "scan"
		cfg.Resolve.StartPage = 4
		cfg.Scan.StartPage = 9

		bc, err := cfg.BuilderConfig(nil, logger)
		if err != nil {
			t.Fatalf("BuilderConfig failed: %v", err)
		}
		if bc.StartPage != 9 {
			t.Errorf("start page = %d, want 9", bc.StartPage)
		}
	})

	t.Run("invalid insert policy propagates", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Insert.Policy = "sideways"
		if _, err := cfg.BuilderConfig(nil, logger); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("missing fonts without builtin fallback", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Fonts.AllowBuiltin = false
		_, err := cfg.BuilderConfig(nil, logger)
		if err == nil {
			t.Error("expected font resolution error")
		}
	})
}

func TestConfig_WatermarkOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.WatermarkOptions()

	if opts.Text != "SAMPLE" || opts.FontName != "Helvetica" {
		t.Errorf("unexpected options: %+v", opts)
	}
	if opts.Points != 60 || opts.Opacity != 0.3 || opts.Rotation != 45 {
		t.Errorf("unexpected metrics: %+v", opts)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("written config is not parseable: %v", err)
	}
	if cfg.Mode != "extract" || cfg.TOC.Heading != "Contents" {
		t.Errorf("round-tripped config lost defaults: %+v", cfg)
	}
}

func TestResolveFontPath(t *testing.T) {
	if got := resolveFontPath("/abs/font.ttf", nil); got != "/abs/font.ttf" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := resolveFontPath("", nil); got != "" {
		t.Errorf("empty path changed: %q", got)
	}
}
