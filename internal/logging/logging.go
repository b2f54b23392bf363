// Package logging builds the charmbracelet/log logger used by the stores.
//
// The TUIs own the terminal, so logs go to a file rather than stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

// Config selects where and how much to log.
type Config struct {
	// Path is the log file. Empty disables logging.
	Path string
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string
	// Command is attached to every entry.
	Command string
}

// New opens cfg.Path for appending and returns a logger writing to it
// together with a function that closes the file.
func New(cfg Config) (*clog.Logger, func() error, error) {
	if cfg.Path == "" {
		return Discard(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	l := NewWriter(f, cfg.Level)
	if cfg.Command != "" {
		l = l.With("command", cfg.Command)
	}
	return l, f.Close, nil
}

// NewWriter returns a logfmt logger writing to w.
func NewWriter(w io.Writer, level string) *clog.Logger {
	l := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           ParseLevel(level),
	})
	l.SetFormatter(clog.LogfmtFormatter)
	return l
}

// Discard returns a logger that drops everything.
func Discard() *clog.Logger {
	return clog.New(io.Discard)
}

// ParseLevel converts a string level to clog.Level.
func ParseLevel(level string) clog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return clog.DebugLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}
