// Package config loads the editor's tunables from a TOML file with
// environment-variable overrides. Loading goes through a FileSystem
// seam so tests can substitute an in-memory filesystem.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the editor configuration document.
type Config struct {
	// KillRingCapacity bounds the kill ring's entry count.
	KillRingCapacity int `toml:"kill_ring_capacity"`
	// MarkRingCapacity bounds each buffer's mark ring.
	MarkRingCapacity int `toml:"mark_ring_capacity"`
	// UndoMaxEntries bounds each buffer's undo log before the oldest
	// entries are garbage-collected.
	UndoMaxEntries int `toml:"undo_max_entries"`
	// TabWidth is the display width of a tab character.
	TabWidth int `toml:"tab_width"`
	// SessionFile is where minibuffer history and the recent-file list
	// persist between runs; empty disables session persistence.
	SessionFile string `toml:"session_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		KillRingCapacity: 60,
		MarkRingCapacity: 16,
		UndoMaxEntries:   10000,
		TabWidth:         4,
		SessionFile:      defaultSessionFile(),
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "nucleus", "session.json")
}

// FileSystem abstracts the file reads Load performs, so tests can run
// against an in-memory tree.
type FileSystem interface {
	fs.FS
	ReadFile(path string) ([]byte, error)
}

type osFS struct{}

func (osFS) Open(name string) (fs.File, error)    { return os.Open(name) }
func (osFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// DefaultFS returns the real filesystem.
func DefaultFS() FileSystem { return osFS{} }

// Load reads path on the real filesystem, overlaying the file's values
// on the defaults and the NUCLEUS_* environment on top of both. A
// missing file is not an error: defaults plus environment apply.
func Load(path string) (Config, error) {
	return LoadFS(DefaultFS(), path)
}

// LoadFS is Load with an explicit FileSystem.
func LoadFS(fsys FileSystem, path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := fsys.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// fall through to env overlay
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	applyEnv(&cfg, os.LookupEnv)
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.KillRingCapacity <= 0 {
		return fmt.Errorf("kill_ring_capacity must be positive, got %d", c.KillRingCapacity)
	}
	if c.MarkRingCapacity <= 0 {
		return fmt.Errorf("mark_ring_capacity must be positive, got %d", c.MarkRingCapacity)
	}
	if c.UndoMaxEntries <= 0 {
		return fmt.Errorf("undo_max_entries must be positive, got %d", c.UndoMaxEntries)
	}
	if c.TabWidth <= 0 || c.TabWidth > 16 {
		return fmt.Errorf("tab_width must be in 1..16, got %d", c.TabWidth)
	}
	return nil
}
