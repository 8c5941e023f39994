package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Pose != "standing" {
		t.Errorf("pose: got %q", cfg.Pose)
	}
	if cfg.Model != "auto" {
		t.Errorf("model: got %q", cfg.Model)
	}
	if cfg.Palette != "mixed" {
		t.Errorf("palette: got %q", cfg.Palette)
	}
	if cfg.Solid || cfg.Dither {
		t.Error("solid and dither should default off")
	}
	if !cfg.Preview || cfg.PreviewSize != 512 || cfg.Supersample != 2 {
		t.Errorf("preview defaults: %v %d %d", cfg.Preview, cfg.PreviewSize, cfg.Supersample)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("workers: got %d", cfg.Workers)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level: got %q", cfg.Logging.Level)
	}
}

func TestLoadMissingPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pose != "standing" {
		t.Errorf("empty path should yield defaults, got pose %q", cfg.Pose)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
pose: waving
palette: wool
solid: true
output_dir: /tmp/statues
preview_size: 256
workers: 3
logging:
  level: debug
  file: run.log
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pose != "waving" || cfg.Palette != "wool" || !cfg.Solid {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.OutputDir != "/tmp/statues" || cfg.PreviewSize != 256 || cfg.Workers != 3 {
		t.Errorf("output settings: %+v", cfg)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "run.log" {
		t.Errorf("logging settings: %+v", cfg.Logging)
	}
	// Unset keys keep defaults.
	if cfg.Model != "auto" {
		t.Errorf("model default lost: %q", cfg.Model)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("pose: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Default()
	cfg.Resolve(Flags{
		Pose:      "sitting",
		Model:     "slim",
		Palette:   "terracotta",
		Dither:    true,
		OutputDir: "out",
		Workers:   2,
	})
	if cfg.Pose != "sitting" || cfg.Model != "slim" || cfg.Palette != "terracotta" {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if !cfg.Dither || cfg.Solid {
		t.Errorf("bool flags: dither=%v solid=%v", cfg.Dither, cfg.Solid)
	}
	if cfg.OutputDir != "out" || cfg.Workers != 2 {
		t.Errorf("output flags: %q %d", cfg.OutputDir, cfg.Workers)
	}
}

func TestResolveClampsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Workers = -1
	cfg.PreviewSize = 0
	cfg.Supersample = -2
	cfg.Resolve(Flags{})
	if cfg.Workers <= 0 {
		t.Errorf("workers not clamped: %d", cfg.Workers)
	}
	if cfg.PreviewSize != 512 {
		t.Errorf("preview size not clamped: %d", cfg.PreviewSize)
	}
	if cfg.Supersample != 1 {
		t.Errorf("supersample not clamped: %d", cfg.Supersample)
	}
}
