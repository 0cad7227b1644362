// Package config handles the XDG configuration directory, config.toml and
// the OAuth file paths.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todolist"

	// SettingsFile is the optional TOML settings filename.
	SettingsFile = "config.toml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Defaults for settings not present in config.toml.
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultTitle       = "Todo List"
	DefaultPlaceholder = "Enter a new Task"
)

// Environment variables that override config.toml.
const (
	EnvLogLevel = "TODOLIST_LOG_LEVEL"
	EnvLogFile  = "TODOLIST_LOG_FILE"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	Settings
}

// Settings is the decoded form of config.toml.
type Settings struct {
	LogLevel  string         `toml:"log_level"`
	LogFormat string         `toml:"log_format"`
	LogFile   string         `toml:"log_file"`
	UI        UISettings     `toml:"ui"`
	Export    ExportSettings `toml:"export"`
}

// UISettings controls the terminal UI text.
type UISettings struct {
	Title       string `toml:"title"`
	Heading     string `toml:"heading"`
	Placeholder string `toml:"placeholder"`
}

// ExportSettings controls the export command.
type ExportSettings struct {
	// List is the Google Tasks list to export to when --list is not given.
	// Empty means the default list.
	List string `toml:"list"`
}

// DefaultSettings returns the settings used when config.toml is absent.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		UI: UISettings{
			Title:       DefaultTitle,
			Placeholder: DefaultPlaceholder,
		},
	}
}

// New creates a new Config with the default or specified config directory
// and default settings. It does not read config.toml.
// If configDir is empty, uses XDG_CONFIG_HOME/todolist or $HOME/.config/todolist.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, Settings: DefaultSettings()}, nil
}

// Load is New followed by reading config.toml, if present, and applying
// environment overrides.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.loadSettingsFile(); err != nil {
		return nil, err
	}
	cfg.loadFromEnv()
	return cfg, nil
}

func (c *Config) loadSettingsFile() error {
	path := c.SettingsPath()
	md, err := toml.DecodeFile(path, &c.Settings)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("loading %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func (c *Config) loadFromEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		c.LogFile = v
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to config.toml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
