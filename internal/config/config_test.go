package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Setenv registers the restore; the vars must be absent for the
	// defaults to apply.
	t.Setenv("ECOQUEST_DATA_DIR", "")
	t.Setenv("ECOQUEST_DATA_FILE", "")
	os.Unsetenv("ECOQUEST_DATA_DIR")
	os.Unsetenv("ECOQUEST_DATA_FILE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir == "" {
		t.Errorf("expected a default data dir")
	}
	if cfg.DataFile != "ecoquest.db" {
		t.Errorf("expected default data file, got %q", cfg.DataFile)
	}
	if filepath.Base(cfg.DataPath()) != "ecoquest.db" {
		t.Errorf("unexpected data path %q", cfg.DataPath())
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ECOQUEST_DATA_DIR", dir)
	t.Setenv("ECOQUEST_DATA_FILE", "class.db")
	t.Setenv("ECOQUEST_SEED", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, want := cfg.DataPath(), filepath.Join(dir, "class.db"); got != want {
		t.Errorf("data path %q, want %q", got, want)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed %d, want 42", cfg.Seed)
	}
}
