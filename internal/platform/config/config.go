package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir     string
	DBPath      string
	SettingsDir string
	LogPath     string
	LogLevel    string
	ExportDir   string
}

// fileConfig is the optional config.yaml in the data directory.
type fileConfig struct {
	LogLevel  string `yaml:"log_level"`
	ExportDir string `yaml:"export_dir"`
}

// New resolves the data directory: explicit flag value wins, then the
// TRAINLOG_DATA environment variable, then ~/.trainlog.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		dataDir = os.Getenv("TRAINLOG_DATA")
	}
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, errors.New("cannot resolve home directory; pass --data")
		}
		dataDir = filepath.Join(home, ".trainlog")
	}

	cfg := Config{
		DataDir:     dataDir,
		DBPath:      filepath.Join(dataDir, "trainlog.db"),
		SettingsDir: filepath.Join(dataDir, "settings"),
		LogPath:     filepath.Join(dataDir, "trainlog.log"),
		LogLevel:    "info",
		ExportDir:   dataDir,
	}

	b, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return Config{}, err
		}
		if fc.LogLevel != "" {
			cfg.LogLevel = fc.LogLevel
		}
		if fc.ExportDir != "" {
			cfg.ExportDir = fc.ExportDir
		}
	}
	return cfg, nil
}
