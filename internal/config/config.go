// Package config loads the CLI configuration.
//
// The file is found in this order:
//   - the path in DEO_CONFIG (must exist),
//   - deo.yaml in the working directory,
//   - $XDG_CONFIG_HOME/deo/config.yaml (~/.config/deo/config.yaml).
//
// A missing file is not an error; defaults apply. DEO_PACKAGE_MANAGER,
// DEO_TEMPLATES and DEO_LOG_LEVEL override the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const FileName = "deo.yaml"

// PackageManager installs the dependencies of a generated application.
type PackageManager string

const (
	PNPM PackageManager = "pnpm"
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
)

var PackageManagers = []PackageManager{PNPM, NPM, Yarn}

type Config struct {
	// PackageManager is empty when neither file nor environment set one.
	PackageManager PackageManager `yaml:"packageManager"`

	// Templates is a directory replacing the embedded template tree.
	Templates string `yaml:"templates"`

	Log LogConfig `yaml:"log"`

	// Path of the file the config was read from, empty for defaults.
	Path string `yaml:"-"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Manager returns the configured package manager or pnpm.
func (c *Config) Manager() PackageManager {
	if c.PackageManager == "" {
		return PNPM
	}
	return c.PackageManager
}

// LogLevel maps Log.Level to a slog level, defaulting to warn.
func (c *Config) LogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func (c *Config) Validate() error {
	if c.PackageManager != "" {
		valid := false
		for _, pm := range PackageManagers {
			if c.PackageManager == pm {
				valid = true
			}
		}
		if !valid {
			return fmt.Errorf("invalid package manager %q (use pnpm, npm or yarn)", c.PackageManager)
		}
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

// Load reads the configuration for a process running in cwd.
func Load(cwd string) (*Config, error) {
	cfg := &Config{}

	path, err := locate(cwd)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func locate(cwd string) (string, error) {
	if explicit := os.Getenv("DEO_CONFIG"); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file from DEO_CONFIG: %w", err)
		}
		return explicit, nil
	}

	candidates := []string{filepath.Join(cwd, FileName)}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "deo", "config.yaml"))
	}

	for _, candidate := range candidates {
		_, err := os.Stat(candidate)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	c.Path = path

	if c.Templates != "" && !filepath.IsAbs(c.Templates) {
		c.Templates = filepath.Join(filepath.Dir(path), c.Templates)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DEO_PACKAGE_MANAGER"); v != "" {
		c.PackageManager = PackageManager(v)
	}
	if v := os.Getenv("DEO_TEMPLATES"); v != "" {
		c.Templates = v
	}
	if v := os.Getenv("DEO_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}
