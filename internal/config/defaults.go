package config

// Config is the root configuration for folio.
type Config struct {
	// Mode selects the title source: "extract" or "scan".
	Mode      string    `mapstructure:"mode" yaml:"mode"`
	TOC       TOC       `mapstructure:"toc" yaml:"toc"`
	Scan      Scan      `mapstructure:"scan" yaml:"scan"`
	Resolve   Resolve   `mapstructure:"resolve" yaml:"resolve"`
	Insert    Insert    `mapstructure:"insert" yaml:"insert"`
	Layout    Layout    `mapstructure:"layout" yaml:"layout"`
	Fonts     Fonts     `mapstructure:"fonts" yaml:"fonts"`
	Watermark Watermark `mapstructure:"watermark" yaml:"watermark"`
	Server    Server    `mapstructure:"server" yaml:"server"`
}

// TOC holds settings shared by both title source modes.
type TOC struct {
	// Heading is the contents-page marker and the heading drawn on the
	// generated TOC pages. Case-sensitive, matched as a whole word.
	Heading string `mapstructure:"heading" yaml:"heading"`
	// MaxPasses caps the pagination solver's correction passes.
	MaxPasses int `mapstructure:"max_passes" yaml:"max_passes"`
}

// Scan configures the font-size page classifier.
type Scan struct {
	// StartPage is the 0-based first page to inspect, skipping front
	// matter such as cover and colophon.
	StartPage int `mapstructure:"start_page" yaml:"start_page"`
	// ChapterMinSize and EntryMinSize are the font-size thresholds:
	// sizes above ChapterMinSize open chapters, sizes above EntryMinSize
	// open entries, anything else is body text.
	ChapterMinSize float64 `mapstructure:"chapter_min_size" yaml:"chapter_min_size"`
	EntryMinSize   float64 `mapstructure:"entry_min_size" yaml:"entry_min_size"`
}

// Resolve configures the occurrence resolver used in extraction mode.
type Resolve struct {
	// StartPage is the 0-based page where occurrence search begins.
	StartPage int `mapstructure:"start_page" yaml:"start_page"`
	// ChapterMaxLines is the chapter-page heuristic: a matched page with
	// at most this many lines, one of them the bare title, is a chapter
	// heading page.
	ChapterMaxLines int `mapstructure:"chapter_max_lines" yaml:"chapter_max_lines"`
}

// Insert decides where the generated TOC pages go.
type Insert struct {
	// Policy is "append" or "after-page".
	Policy string `mapstructure:"policy" yaml:"policy"`
	// AfterPage is the 1-based source page the TOC follows when Policy
	// is "after-page".
	AfterPage int `mapstructure:"after_page" yaml:"after_page"`
}

// Layout holds the TOC page metrics. Lengths are in millimeters, font
// sizes in points.
type Layout struct {
	MarginLeftMM   float64 `mapstructure:"margin_left_mm" yaml:"margin_left_mm"`
	MarginRightMM  float64 `mapstructure:"margin_right_mm" yaml:"margin_right_mm"`
	MarginTopMM    float64 `mapstructure:"margin_top_mm" yaml:"margin_top_mm"`
	MarginBottomMM float64 `mapstructure:"margin_bottom_mm" yaml:"margin_bottom_mm"`

	HeadingPoints float64 `mapstructure:"heading_points" yaml:"heading_points"`
	HeadingDropMM float64 `mapstructure:"heading_drop_mm" yaml:"heading_drop_mm"`

	ChapterPoints float64 `mapstructure:"chapter_points" yaml:"chapter_points"`
	ChapterRowMM  float64 `mapstructure:"chapter_row_mm" yaml:"chapter_row_mm"`
	ChapterGapMM  float64 `mapstructure:"chapter_gap_mm" yaml:"chapter_gap_mm"`

	EntryPoints   float64 `mapstructure:"entry_points" yaml:"entry_points"`
	EntryRowMM    float64 `mapstructure:"entry_row_mm" yaml:"entry_row_mm"`
	EntryIndentMM float64 `mapstructure:"entry_indent_mm" yaml:"entry_indent_mm"`

	PageNumGapMM float64 `mapstructure:"page_num_gap_mm" yaml:"page_num_gap_mm"`
	LeaderGapMM  float64 `mapstructure:"leader_gap_mm" yaml:"leader_gap_mm"`
	LeaderStep   float64 `mapstructure:"leader_step" yaml:"leader_step"`
}

// FontCandidate pairs a regular and a medium weight TTF file.
type FontCandidate struct {
	Regular string `mapstructure:"regular" yaml:"regular"`
	Medium  string `mapstructure:"medium" yaml:"medium"`
}

// Fonts configures font resolution for TOC rendering.
type Fonts struct {
	// Candidates are probed in order; the first pair whose files both
	// exist wins. Paths under the home fonts directory are probed too.
	Candidates []FontCandidate `mapstructure:"candidates" yaml:"candidates"`
	// AllowBuiltin falls back to the drawing library's built-in serif
	// faces when no candidate resolves. With this off, missing fonts are
	// a hard failure before any drawing occurs.
	AllowBuiltin bool `mapstructure:"allow_builtin" yaml:"allow_builtin"`
}

// Watermark configures the per-page text stamp.
type Watermark struct {
	Text     string  `mapstructure:"text" yaml:"text"`
	FontName string  `mapstructure:"font_name" yaml:"font_name"`
	Points   float64 `mapstructure:"points" yaml:"points"`
	Color    string  `mapstructure:"color" yaml:"color"`
	Opacity  float64 `mapstructure:"opacity" yaml:"opacity"`
	Rotation float64 `mapstructure:"rotation" yaml:"rotation"`
}

// Server holds HTTP server settings.
type Server struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// DefaultConfig returns the built-in defaults, matching the observed book
// template.
func DefaultConfig() *Config {
	return &Config{
		Mode: "extract",
		TOC: TOC{
			Heading:   "Contents",
			MaxPasses: 5,
		},
		Scan: Scan{
			StartPage:      2,
			ChapterMinSize: 24,
			EntryMinSize:   16,
		},
		Resolve: Resolve{
			StartPage:       2,
			ChapterMaxLines: 3,
		},
		Insert: Insert{
			Policy: "append",
		},
		Layout: Layout{
			MarginLeftMM:   22,
			MarginRightMM:  22,
			MarginTopMM:    25,
			MarginBottomMM: 30,

			HeadingPoints: 18,
			HeadingDropMM: 12,

			ChapterPoints: 12.5,
			ChapterRowMM:  7.2,
			ChapterGapMM:  2.5,

			EntryPoints:   11.5,
			EntryRowMM:    6.2,
			EntryIndentMM: 10,

			PageNumGapMM: 6,
			LeaderGapMM:  3,
			LeaderStep:   1.35,
		},
		Fonts: Fonts{
			AllowBuiltin: true,
		},
		Watermark: Watermark{
			Text:     "SAMPLE",
			FontName: "Helvetica",
			Points:   60,
			Color:    "#808080",
			Opacity:  0.3,
			Rotation: 45,
		},
		Server: Server{
			Host: "127.0.0.1",
			Port: "8080",
		},
	}
}
