// Package config loads the cictl YAML configuration.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/cictl/internal/domain"
	"github.com/doeshing/cictl/internal/ports"
)

// FileLoader loads YAML configuration from ~/.cictl/config.yaml
// (overridable via CICTL_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is seeded with the
// defaults so the first run on a fresh runner works without setup.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Defaults()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path returns the config file path the loader resolves to.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("CICTL_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".cictl", "config.yaml")
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, domain.DirectoryPermissions)
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.ConfigFilePermissions)
}

// Defaults returns the configuration seeded on first run.
func Defaults() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Provider:            "github",
		ReleaseBranch:       "main",
		DeployStage:         "deploy",
		Execution: domain.ExecutionSettings{
			Shell: "auto",
		},
		History: domain.HistorySettings{
			Enabled: true,
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Provider == "" {
		cfg.Provider = "github"
	}
	if cfg.ReleaseBranch == "" {
		cfg.ReleaseBranch = "main"
	}
	if cfg.DeployStage == "" {
		cfg.DeployStage = "deploy"
	}
	if cfg.Execution.Shell == "" {
		cfg.Execution.Shell = "auto"
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
