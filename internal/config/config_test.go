package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected Default() for a missing file, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".surgerc.toml")
	content := `
color = "off"
quiet = true
max_diagnostics = 50
cache_dir = "/tmp/mycache"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := Config{Color: "off", Quiet: true, MaxDiagnostics: 50, CacheDir: "/tmp/mycache"}
	if cfg != want {
		t.Errorf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadPartialOverrideKeepsOtherDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".surgerc.toml")
	if err := os.WriteFile(path, []byte(`quiet = true`), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Quiet {
		t.Error("expected Quiet to be overridden to true")
	}
	if cfg.Color != Default().Color {
		t.Errorf("expected Color to keep its default, got %q", cfg.Color)
	}
	if cfg.MaxDiagnostics != Default().MaxDiagnostics {
		t.Errorf("expected MaxDiagnostics to keep its default, got %d", cfg.MaxDiagnostics)
	}
}

func TestLoadInvalidTOMLReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".surgerc.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed TOML")
	}
}
