package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "worklog.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv(EnvVar, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() err = %v, want nil", err)
	}
	if cfg.Database.Path != "work_log.db" || cfg.UI.Theme != "classic" || cfg.Log.Level != "warn" {
		t.Fatalf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	path := writeConfig(t, "ui:\n  theme: neon\n")
	t.Setenv(EnvVar, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() err = %v, want nil", err)
	}
	if cfg.UI.Theme != "neon" {
		t.Fatalf("UI.Theme = %q, want neon", cfg.UI.Theme)
	}
	if cfg.Database.Path != "work_log.db" {
		t.Fatalf("Database.Path = %q, want default kept", cfg.Database.Path)
	}
}

func TestLoadFile_Overrides(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/elsewhere.db
  pool_size: 4
log:
  level: debug
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() err = %v, want nil", err)
	}
	if cfg.Database.Path != "/tmp/elsewhere.db" || cfg.Database.PoolSize != 4 {
		t.Fatalf("Database = %+v, want overrides", cfg.Database)
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Fatalf("SlogLevel() = %v, %v, want debug, nil", level, err)
	}
}

func TestLoadFile_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, "database:\n  path: ~/logs/work.db\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() err = %v, want nil", err)
	}
	if want := filepath.Join(home, "logs", "work.db"); cfg.Database.Path != want {
		t.Fatalf("Database.Path = %q, want %q", cfg.Database.Path, want)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown theme": "ui:\n  theme: sparkly\n",
		"unknown level": "log:\n  level: loud\n",
		"empty path":    "database:\n  path: \"\"\n",
		"bad yaml":      "database: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFile(writeConfig(t, body)); err == nil {
				t.Fatal("LoadFile() err = nil, want non-nil")
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "config:") {
		t.Fatalf("LoadFile() err = %v, want config error", err)
	}
}
