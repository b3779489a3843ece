package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg GliderConfig
	if err := yaml.Unmarshal(GetDefaultYAML("glider"), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultGliderConfig() {
		t.Errorf("embedded defaults differ from DefaultGliderConfig():\n got  %+v\n want %+v", cfg, DefaultGliderConfig())
	}
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultGliderConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GliderConfig)
	}{
		{"zero width", func(c *GliderConfig) { c.Field.Width = 0 }},
		{"negative height", func(c *GliderConfig) { c.Field.Height = -600 }},
		{"ground fills field", func(c *GliderConfig) { c.Field.GroundHeight = c.Field.Height }},
		{"negative ground", func(c *GliderConfig) { c.Field.GroundHeight = -1 }},
		{"zero glider", func(c *GliderConfig) { c.Glider.Width = 0 }},
		{"glider wider than field", func(c *GliderConfig) { c.Glider.Width = c.Field.Width + 1 }},
		{"glider taller than field", func(c *GliderConfig) { c.Glider.Height = 700 }},
		{"glider as tall as the sky", func(c *GliderConfig) { c.Glider.Height = c.Field.Height - c.Field.GroundHeight }},
		{"negative speed", func(c *GliderConfig) { c.Glider.SpeedX = -1 }},
		{"no entities", func(c *GliderConfig) { c.Entities.Count = 0 }},
		{"negative bonus", func(c *GliderConfig) { c.Scoring.ThermalBonus = -10 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGliderConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadGliderCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.yaml")
	data := []byte("field:\n  width: 1024\nglider:\n  gravity: 0.1\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGlider(path)
	if err != nil {
		t.Fatalf("LoadGlider() failed: %v", err)
	}
	if cfg.Field.Width != 1024 {
		t.Errorf("width = %g, want 1024", cfg.Field.Width)
	}
	if cfg.Glider.Gravity != 0.1 {
		t.Errorf("gravity = %g, want 0.1", cfg.Glider.Gravity)
	}
	// Unset keys keep their defaults
	if cfg.Field.Height != 600 || cfg.Glider.Lift != -5 || cfg.Entities.Count != 3 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadGliderCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadGlider(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGlider(bad); err == nil {
		t.Error("malformed custom file should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("field:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadGlider(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom file should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestResolvePathPrefersCustom(t *testing.T) {
	if got := ResolvePath("/tmp/x.yaml"); got != "/tmp/x.yaml" {
		t.Errorf("ResolvePath() = %q, want custom path", got)
	}
}

func TestWatcherDeliversReloadedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.yaml")
	if err := os.WriteFile(path, []byte("glider:\n  gravity: 0.05\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()
	if w.Path() != path {
		t.Errorf("Path() = %q, want %q", w.Path(), path)
	}

	if err := os.WriteFile(path, []byte("glider:\n  gravity: 0.2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Configs:
			// A reload may observe the truncated file first; wait for the final content.
			if cfg.Glider.Gravity == 0.2 {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("unexpected watcher error: %v", err)
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.yaml")
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
	if _, ok := <-w.Configs; ok {
		t.Error("Configs should be closed")
	}
}
