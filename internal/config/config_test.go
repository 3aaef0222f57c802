package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glottalab/glotta/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Epsilon != 0.0001 {
		t.Errorf("default epsilon = %v", cfg.Epsilon)
	}
	if cfg.AxiomRatio != 0.5 {
		t.Errorf("default axiom ratio = %v", cfg.AxiomRatio)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log level = %q", cfg.LogLevel)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glotta.toml")
	content := `
epsilon = 0.01
axiom_ratio = 0.7
min_token_runes = 2
use_kagome = true
seed = 42
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Epsilon != 0.01 || cfg.AxiomRatio != 0.7 || cfg.MinTokenRunes != 2 {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.UseKagome || cfg.Seed != 42 || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glotta.toml")
	if err := os.WriteFile(path, []byte("epsilonn = 0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Error("expected error for unknown key")
	}
}
