// Package logging builds the application logger with charmbracelet/log.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"todolist/internal/config"
)

// Prefix is prepended to every log line.
const Prefix = "todolist"

// Options configures a logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
}

// OptionsFromConfig derives logger options from settings and flags.
// --debug wins over log_level.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		Level:     ParseLevel(cfg.LogLevel),
		Formatter: ParseFormatter(cfg.LogFormat),
	}
	if cfg.Debug {
		opts.Level = log.DebugLevel
	}
	return opts
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Setup creates the logger described by cfg. When cfg.LogFile is set, the
// file is opened for appending and fallback is ignored; the returned close
// func must be called on exit either way.
func Setup(cfg *config.Config, fallback io.Writer) (*log.Logger, func() error, error) {
	opts := OptionsFromConfig(cfg)
	if cfg.LogFile == "" {
		return New(fallback, opts), func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	opts.ReportTimestamp = true
	return New(f, opts), f.Close, nil
}

// ParseLevel parses a level name, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a formatter name, defaulting to text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
