// Package config loads work log settings from a YAML file.
//
// The file is found through the --config flag or the WORKLOG_CONFIG
// environment variable. Without either, built-in defaults are used.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/worklog/internal/ui"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "WORKLOG_CONFIG"

const defaultDBFile = "work_log.db"

// Config is the whole settings file.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	UI       UIConfig       `yaml:"ui"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig locates the SQLite file.
type DatabaseConfig struct {
	// Path is the SQLite file. Relative paths resolve against the
	// working directory.
	Path string `yaml:"path"`

	// PoolSize is the number of SQLite connections kept open.
	PoolSize int `yaml:"pool_size"`
}

// UIConfig controls terminal styling.
type UIConfig struct {
	// Theme is one of ui.ThemeNames().
	Theme string `yaml:"theme"`
}

// LogConfig controls the stderr logger.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: defaultDBFile, PoolSize: 2},
		UI:       UIConfig{Theme: ui.DefaultTheme},
		Log:      LogConfig{Level: "warn"},
	}
}

// Load reads the file at path, or at $WORKLOG_CONFIG when path is empty.
// With neither set it returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Database.Path = expandHome(cfg.Database.Path)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("database.path is required")
	}
	if c.Database.PoolSize < 0 {
		return fmt.Errorf("database.pool_size must not be negative, got %d", c.Database.PoolSize)
	}
	if _, ok := ui.ThemeByName(c.UI.Theme); !ok {
		return fmt.Errorf("ui.theme %q unknown (want one of %s)", c.UI.Theme, strings.Join(ui.ThemeNames(), ", "))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts Level for log/slog.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q unknown (want debug, info, warn or error)", l.Level)
	}
	return level, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return os.ExpandEnv(path)
}
