package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lambdawg/lambdawg/internal/config"
)

func TestLoadProjectConfigMissingFile(t *testing.T) {
	cfg, err := config.LoadProjectConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error for a missing file: %v", err)
	}
	if cfg != (config.ProjectConfig{}) {
		t.Fatalf("expected a zero-value config, got %+v", cfg)
	}
}

func TestLoadProjectConfigParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lambdawg.yaml")
	content := "skipTypeCheck: true\noutDir: dist\nentry: main.lwg\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := config.LoadProjectConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.SkipTypeCheck || cfg.OutDir != "dist" || cfg.Entry != "main.lwg" {
		t.Fatalf("got %+v", cfg)
	}
}

func TestHasSourceExt(t *testing.T) {
	if !config.HasSourceExt("foo.lwg") {
		t.Fatalf("expected foo.lwg to be recognized")
	}
	if config.HasSourceExt("foo.txt") {
		t.Fatalf("expected foo.txt not to be recognized")
	}
}
