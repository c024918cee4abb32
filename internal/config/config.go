// Package config handles loading, hot-reloading and translating folio
// configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/versbook/folio/internal/fonts"
	"github.com/versbook/folio/internal/home"
	"github.com/versbook/folio/internal/pdfops"
	"github.com/versbook/folio/internal/toc"
)

// mmToPt converts millimeters to PDF points.
const mmToPt = 72.0 / 25.4

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(cfgFile); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults and config file.
func (cm *Manager) initViper(cfgFile string) error {
	defaults := DefaultConfig()
	viper.SetDefault("mode", defaults.Mode)
	viper.SetDefault("toc", defaults.TOC)
	viper.SetDefault("scan", defaults.Scan)
	viper.SetDefault("resolve", defaults.Resolve)
	viper.SetDefault("insert", defaults.Insert)
	viper.SetDefault("layout", defaults.Layout)
	viper.SetDefault("fonts", defaults.Fonts)
	viper.SetDefault("watermark", defaults.Watermark)
	viper.SetDefault("server", defaults.Server)

	// Environment variables with FOLIO_ prefix
	viper.SetEnvPrefix("FOLIO")
	viper.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.folio")
	}

	// Try to read config file (not required)
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration.
func (cm *Manager) WatchConfig() {
	viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	viper.WatchConfig()
}

// InsertPolicy translates the insert section into a toc.InsertPolicy.
func (c *Config) InsertPolicy() (toc.InsertPolicy, error) {
	switch c.Insert.Policy {
	case "append", "":
		return toc.Append(), nil
	case "after-page":
		if c.Insert.AfterPage < 0 {
			return toc.InsertPolicy{}, fmt.Errorf("insert.after_page must be >= 0, got %d", c.Insert.AfterPage)
		}
		return toc.InsertAfter(c.Insert.AfterPage), nil
	default:
		return toc.InsertPolicy{}, fmt.Errorf("unknown insert policy %q", c.Insert.Policy)
	}
}

// ResolveFonts probes the configured font candidates in priority order.
// Relative candidate paths resolve against the home fonts directory.
func (c *Config) ResolveFonts(homeDir *home.Dir) (fonts.Set, error) {
	candidates := make([]fonts.Candidate, 0, len(c.Fonts.Candidates))
	for _, cand := range c.Fonts.Candidates {
		candidates = append(candidates, fonts.Candidate{
			Regular: resolveFontPath(cand.Regular, homeDir),
			Medium:  resolveFontPath(cand.Medium, homeDir),
		})
	}
	return fonts.Resolve(candidates, c.Fonts.AllowBuiltin)
}

func resolveFontPath(path string, homeDir *home.Dir) string {
	if path == "" || filepath.IsAbs(path) || homeDir == nil {
		return path
	}
	return filepath.Join(homeDir.FontsPath(), path)
}

// BuilderConfig translates the configuration into a toc.Config, resolving
// fonts and the insertion policy. homeDir may be nil when no home
// directory is in play.
func (c *Config) BuilderConfig(homeDir *home.Dir, logger *slog.Logger) (toc.Config, error) {
	insert, err := c.InsertPolicy()
	if err != nil {
		return toc.Config{}, err
	}

	fontSet, err := c.ResolveFonts(homeDir)
	if err != nil {
		return toc.Config{}, err
	}

	mode := toc.Mode(c.Mode)
	startPage := c.Resolve.StartPage
	if mode == toc.ModeScan {
		startPage = c.Scan.StartPage
	}

	tempDir := ""
	if homeDir != nil {
		tempDir = homeDir.TmpPath()
	}

	return toc.Config{
		Mode:            mode,
		Heading:         c.TOC.Heading,
		StartPage:       startPage,
		ChapterMaxLines: c.Resolve.ChapterMaxLines,
		Classify:        toc.ThresholdPolicy(c.Scan.ChapterMinSize, c.Scan.EntryMinSize),
		Insert:          insert,
		Layout:          c.Layout.toPoints(),
		Fonts:           fontSet,
		TempDir:         tempDir,
		MaxPasses:       c.TOC.MaxPasses,
		Logger:          logger,
	}, nil
}

// WatermarkOptions translates the watermark section.
func (c *Config) WatermarkOptions() pdfops.WatermarkOptions {
	return pdfops.WatermarkOptions{
		Text:     c.Watermark.Text,
		FontName: c.Watermark.FontName,
		Points:   c.Watermark.Points,
		Color:    c.Watermark.Color,
		Opacity:  c.Watermark.Opacity,
		Rotation: c.Watermark.Rotation,
	}
}

// toPoints converts the millimeter-based layout section into renderer
// points.
func (l Layout) toPoints() toc.Layout {
	return toc.Layout{
		MarginLeft:   l.MarginLeftMM * mmToPt,
		MarginRight:  l.MarginRightMM * mmToPt,
		MarginTop:    l.MarginTopMM * mmToPt,
		MarginBottom: l.MarginBottomMM * mmToPt,

		HeadingSize: l.HeadingPoints,
		HeadingDrop: l.HeadingDropMM * mmToPt,

		ChapterSize:      l.ChapterPoints,
		ChapterRowHeight: l.ChapterRowMM * mmToPt,
		ChapterGap:       l.ChapterGapMM * mmToPt,

		EntrySize:      l.EntryPoints,
		EntryRowHeight: l.EntryRowMM * mmToPt,
		EntryIndent:    l.EntryIndentMM * mmToPt,

		PageNumGap: l.PageNumGapMM * mmToPt,
		LeaderGap:  l.LeaderGapMM * mmToPt,
		LeaderStep: l.LeaderStep,
	}
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Folio configuration
# mode selects the title source: "extract" reads the printed contents page,
# "scan" classifies page-opening lines by font size.
# Example for a Hungarian poetry book: set toc.heading to "Tartalom".

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
