// Package config loads optional JSON settings for the viewers. CLI flags
// override file values, and anything still unset falls back to defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds viewer and export settings.
type Config struct {
	// Viewer settings
	FPS  int    `json:"fps"`
	Mesh string `json:"mesh"`

	// Export settings
	ExportSize  string `json:"export_size"`
	Frames      int    `json:"frames"`
	Supersample int    `json:"supersample"`
	Format      string `json:"format"`
	Material    string `json:"material"`
	Workers     int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve overlays CLI flags on the config and fills remaining empty
// fields with defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Mesh != "" {
		c.Mesh = flags.Mesh
	}
	if flags.Size != "" {
		c.ExportSize = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Material != "" {
		c.Material = flags.Material
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.ExportSize == "" {
		c.ExportSize = "800x600"
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Material == "" {
		c.Material = "sun"
	}
	// Workers 0 means one per CPU, resolved by the export pool
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	FPS         int
	Mesh        string
	Size        string
	Frames      int
	Supersample int
	Format      string
	Material    string
	Workers     int
}
