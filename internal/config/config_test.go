package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todolist/internal/config"
)

func writeSettings(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config.toml: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFile, "")
	dir := t.TempDir()

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != dir {
		t.Errorf("expected dir %q, got %q", dir, cfg.Dir)
	}
	if cfg.Settings != config.DefaultSettings() {
		t.Errorf("expected default settings, got %+v", cfg.Settings)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFile, "")
	dir := t.TempDir()
	writeSettings(t, dir, `
log_level = "debug"
log_format = "json"

[ui]
heading = "Sri Varssha's"

[export]
list = "Groceries"
`)

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("unexpected log settings: %q %q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.UI.Heading != "Sri Varssha's" {
		t.Errorf("unexpected heading: %q", cfg.UI.Heading)
	}
	// Keys absent from the file keep their defaults.
	if cfg.UI.Title != config.DefaultTitle {
		t.Errorf("expected default title, got %q", cfg.UI.Title)
	}
	if cfg.Export.List != "Groceries" {
		t.Errorf("unexpected export list: %q", cfg.Export.List)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "log_level = \"warn\"\n")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvLogFile, "/tmp/todolist.log")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("expected env log level, got %q", cfg.LogLevel)
	}
	if cfg.LogFile != "/tmp/todolist.log" {
		t.Errorf("expected env log file, got %q", cfg.LogFile)
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "colour = \"pink\"\n")

	_, err := config.Load(dir)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown keys: colour") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "log_level = \n")

	if _, err := config.Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := config.DefaultConfigDir(); got != filepath.Join("/xdg", config.AppName) {
		t.Errorf("unexpected dir: %q", got)
	}
}

func TestTokenLifecycle(t *testing.T) {
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HasToken() || cfg.HasOAuthClient() {
		t.Fatal("expected fresh dir to have no credentials")
	}
	if err := os.WriteFile(cfg.TokenPath(), []byte("{}"), 0600); err != nil {
		t.Fatalf("failed to write token: %v", err)
	}
	if !cfg.HasToken() {
		t.Error("expected token to exist")
	}
	if err := cfg.RemoveToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HasToken() {
		t.Error("expected token to be removed")
	}
}
