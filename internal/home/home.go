// Package home manages the folio home directory layout.
package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the folio home directory.
	DefaultDirName = ".folio"

	// TmpDirName is the subdirectory for per-request working areas.
	TmpDirName = "tmp"

	// FontsDirName is the subdirectory probed for TTF fonts.
	FontsDirName = "fonts"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
)

// Dir represents the folio home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.folio).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// TmpPath returns the path to the working-area directory.
func (d *Dir) TmpPath() string {
	return filepath.Join(d.path, TmpDirName)
}

// FontsPath returns the path to the fonts directory.
func (d *Dir) FontsPath() string {
	return filepath.Join(d.path, FontsDirName)
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// EnsureExists creates the home directory and subdirectories if they
// don't exist.
func (d *Dir) EnsureExists() error {
	if err := os.MkdirAll(d.TmpPath(), 0o755); err != nil {
		return fmt.Errorf("failed to create tmp directory: %w", err)
	}
	if err := os.MkdirAll(d.FontsPath(), 0o755); err != nil {
		return fmt.Errorf("failed to create fonts directory: %w", err)
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home
// directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}
