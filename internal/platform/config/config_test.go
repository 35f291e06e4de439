package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"trainlog/internal/platform/config"
)

func TestNewDerivesPathsFromDataDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, "trainlog.db") {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
	if cfg.SettingsDir != filepath.Join(dir, "settings") {
		t.Fatalf("unexpected settings dir: %s", cfg.SettingsDir)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level, got %s", cfg.LogLevel)
	}
}

func TestNewAppliesYAMLOverrides(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	yaml := "log_level: debug\nexport_dir: " + filepath.Join(dir, "backups") + "\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug level, got %s", cfg.LogLevel)
	}
	if cfg.ExportDir != filepath.Join(dir, "backups") {
		t.Fatalf("override not applied: %s", cfg.ExportDir)
	}
}
