package toc

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/versbook/folio/internal/docmodel"
	"github.com/versbook/folio/internal/fonts"
	"github.com/versbook/folio/internal/pdfops"
)

// Config controls TOC generation. Zero values fall back to the defaults
// of the observed book template.
type Config struct {
	// Mode selects the title source (default ModeExtract).
	Mode Mode
	// Heading is the contents-page marker and the heading drawn on the
	// generated TOC pages (default "Contents").
	Heading string
	// StartPage is the 0-based first content page; earlier pages (cover,
	// colophon) are neither scanned nor searched.
	StartPage int
	// ChapterMaxLines is the resolver's chapter-page line limit.
	ChapterMaxLines int
	// Classify is the scan-mode font-size policy; nil means the default
	// thresholds.
	Classify LevelPolicy
	// Insert decides where the TOC pages go (default append).
	Insert InsertPolicy
	// Layout holds the TOC page metrics; the zero value means
	// DefaultLayout.
	Layout Layout
	// Fonts are the rendering faces; the zero value means the built-in
	// serif faces.
	Fonts fonts.Set
	// TempDir hosts the intermediate TOC document; empty means the
	// system default.
	TempDir string
	// MaxPasses caps the pagination solver (default DefaultMaxPasses).
	MaxPasses int
	// Logger receives progress; nil means slog.Default().
	Logger *slog.Logger
}

// Builder generates a TOC for a source document and assembles the output.
// A Builder is stateless across runs; each run operates on its own
// document handle and entry list.
type Builder struct {
	cfg    Config
	source TitleSource
	render *Renderer
	log    *slog.Logger
}

// NewBuilder validates the configuration and returns a Builder.
func NewBuilder(cfg Config) (*Builder, error) {
	if cfg.Heading == "" {
		cfg.Heading = DefaultHeading
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Fonts == (fonts.Set{}) {
		cfg.Fonts = fonts.Builtin()
	}

	source, err := NewTitleSource(cfg.Mode, cfg)
	if err != nil {
		return nil, err
	}

	return &Builder{
		cfg:    cfg,
		source: source,
		render: &Renderer{Fonts: cfg.Fonts, Layout: cfg.Layout},
		log:    cfg.Logger,
	}, nil
}

// BuildEntries produces the ordered entry list for the document using the
// configured title source. FinalPage is unresolved on every entry.
func (b *Builder) BuildEntries(doc Document) ([]Entry, error) {
	return b.source.BuildEntries(doc)
}

// RenderPages renders the entries as TOC pages and reports the page count
// used.
func (b *Builder) RenderPages(entries []Entry, outPath string, size PageSize, heading string) (int, error) {
	return b.render.RenderPages(entries, outPath, size, heading)
}

// AddTableOfContents reads the source document, builds and paginates the
// TOC, and writes the assembled document to outputPath. Any failure
// aborts the run without persisting partial output.
func (b *Builder) AddTableOfContents(ctx context.Context, sourcePath, outputPath string) error {
	doc, err := docmodel.Open(sourcePath)
	if err != nil {
		return err
	}
	defer doc.Close()

	entries, err := b.BuildEntries(doc)
	if err != nil {
		return err
	}
	b.log.Debug("built TOC entries", "count", len(entries), "mode", b.cfg.Mode)

	if err := ctx.Err(); err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp(b.cfg.TempDir, "folio-toc-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)
	tocPath := filepath.Join(tmpDir, "toc.pdf")

	width, height := doc.PageSize()
	size := PageSize{Width: width, Height: height}
	insertAfter := b.cfg.Insert.resolveAfter(doc.PageCount())

	render := func(entries []Entry) (int, error) {
		return b.render.RenderPages(entries, tocPath, size, b.cfg.Heading)
	}
	tocPages, err := solvePagination(entries, insertAfter, b.cfg.MaxPasses, render)
	if err != nil {
		return err
	}
	b.log.Info("TOC paginated",
		"entries", len(entries),
		"toc_pages", tocPages,
		"insert_after", insertAfter,
	)

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := pdfops.Assemble(sourcePath, tocPath, outputPath, insertAfter); err != nil {
		return err
	}
	b.log.Info("wrote document with TOC", "output", outputPath)
	return nil
}
