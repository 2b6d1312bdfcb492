package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orrery.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadReadsFields(t *testing.T) {
	path := writeConfig(t, `{"fps": 60, "material": "mars", "frames": 90}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FPS != 60 {
		t.Errorf("FPS = %d, want 60", cfg.FPS)
	}
	if cfg.Material != "mars" {
		t.Errorf("Material = %q, want mars", cfg.Material)
	}
	if cfg.Frames != 90 {
		t.Errorf("Frames = %d, want 90", cfg.Frames)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"fps": `)
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	cfg := Config{FPS: 60, Material: "mars", Format: "png"}
	cfg.Resolve(Flags{FPS: 24, Material: "earth"})

	if cfg.FPS != 24 {
		t.Errorf("FPS = %d, want flag value 24", cfg.FPS)
	}
	if cfg.Material != "earth" {
		t.Errorf("Material = %q, want flag value earth", cfg.Material)
	}
	// Format had no flag, file value stands
	if cfg.Format != "png" {
		t.Errorf("Format = %q, want file value png", cfg.Format)
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.FPS != 30 {
		t.Errorf("FPS default = %d, want 30", cfg.FPS)
	}
	if cfg.ExportSize != "800x600" {
		t.Errorf("ExportSize default = %q, want 800x600", cfg.ExportSize)
	}
	if cfg.Frames != 120 {
		t.Errorf("Frames default = %d, want 120", cfg.Frames)
	}
	if cfg.Supersample != 2 {
		t.Errorf("Supersample default = %d, want 2", cfg.Supersample)
	}
	if cfg.Format != "webp" {
		t.Errorf("Format default = %q, want webp", cfg.Format)
	}
	if cfg.Material != "sun" {
		t.Errorf("Material default = %q, want sun", cfg.Material)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0 (auto)", cfg.Workers)
	}
}
