package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Defaults.Model != "medium" {
		t.Errorf("default model = %q, want %q", cfg.Defaults.Model, "medium")
	}
	if cfg.Paths.Python != "" {
		t.Errorf("default python override = %q, want empty", cfg.Paths.Python)
	}
}

func TestLoadNonExistentReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Defaults.Model != "medium" {
		t.Errorf("model = %q, want default", cfg.Defaults.Model)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Defaults.Model = "large-v3"
	cfg.Paths.Python = "/usr/local/bin/python3.12"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if loaded.Defaults.Model != "large-v3" {
		t.Errorf("model = %q, want %q", loaded.Defaults.Model, "large-v3")
	}
	if loaded.Paths.Python != "/usr/local/bin/python3.12" {
		t.Errorf("python = %q, want override preserved", loaded.Paths.Python)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("defaults: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on invalid yaml")
	}
}

func TestModelCacheDirUnderHome(t *testing.T) {
	dir, err := ModelCacheDir()
	if err != nil {
		t.Fatalf("ModelCacheDir() returned error: %v", err)
	}
	if filepath.Base(dir) != "whisper-models" {
		t.Errorf("cache dir = %q, want .../whisper-models", dir)
	}
}
