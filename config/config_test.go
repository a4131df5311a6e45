package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Split.TargetSize != 8000 {
		t.Errorf("expected TargetSize=8000, got %d", cfg.Split.TargetSize)
	}
	if cfg.Split.HeaderFillRatio != 0.7 {
		t.Errorf("expected HeaderFillRatio=0.7, got %f", cfg.Split.HeaderFillRatio)
	}
	if cfg.Split.BlankLookback != 20 {
		t.Errorf("expected BlankLookback=20, got %d", cfg.Split.BlankLookback)
	}
	if cfg.Sections.MinSectionChars != 100 {
		t.Errorf("expected MinSectionChars=100, got %d", cfg.Sections.MinSectionChars)
	}
	if cfg.Index.IndexFile != "prd_chunks.index" {
		t.Errorf("expected default index file, got %s", cfg.Index.IndexFile)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "docsplit.yaml")

	content := `
split:
  target_size: 4000
  blank_lookback: 10
index:
  project: "Test Project"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Split.TargetSize != 4000 {
		t.Errorf("expected TargetSize=4000, got %d", cfg.Split.TargetSize)
	}
	if cfg.Split.BlankLookback != 10 {
		t.Errorf("expected BlankLookback=10, got %d", cfg.Split.BlankLookback)
	}
	if cfg.Index.Project != "Test Project" {
		t.Errorf("expected overridden project, got %s", cfg.Index.Project)
	}
	// Untouched sections keep their defaults.
	if cfg.Split.HeaderFillRatio != 0.7 {
		t.Errorf("expected default HeaderFillRatio, got %f", cfg.Split.HeaderFillRatio)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "docsplit.yaml")

	content := `
catalog:
  db_path: custom/catalog.db
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Catalog.DBPath != "custom/catalog.db" {
		t.Errorf("expected overridden db path, got %s", cfg.Catalog.DBPath)
	}
}

func TestLoadFromDir_Defaults(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Split.TargetSize != 8000 {
		t.Errorf("expected defaults, got TargetSize=%d", cfg.Split.TargetSize)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "docsplit.yaml")

	cfg := DefaultConfig()
	cfg.Split.TargetSize = 2500
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Split.TargetSize != 2500 {
		t.Errorf("expected TargetSize=2500 after round trip, got %d", loaded.Split.TargetSize)
	}
}
