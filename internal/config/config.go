// Package config loads tada settings.
//
// Precedence, lowest first: defaults, the TOML file, TADA_* environment
// variables. Command-line flags are applied by the caller on top.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store/backends"
)

// EnvPrefix marks environment overrides, e.g. TADA_STORAGE_BACKEND.
const EnvPrefix = "TADA_"

// FileName is the config file looked up in the config directory.
const FileName = "config.toml"

// Config is the resolved configuration.
type Config struct {
	StorageBackend string `toml:"storage_backend"`
	DataDir        string `toml:"data_dir"`
	Theme          string `toml:"theme"`
	LogLevel       string `toml:"log_level"`
	LogFile        string `toml:"log_file"`
	DefaultFilter  string `toml:"default_filter"`
}

var themes = map[string]bool{"classic": true, "neon": true, "mono": true}

var levels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StorageBackend: backends.JSON,
		DataDir:        defaultDataDir(),
		Theme:          "classic",
		LogLevel:       "info",
		DefaultFilter:  model.FilterAll.String(),
	}
}

func defaultDataDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "tada")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state", "tada")
}

// DefaultPath is $TADA_CONFIG_PATH or $XDG_CONFIG_HOME/tada/config.toml.
func DefaultPath() string {
	if p := os.Getenv(EnvPrefix + "CONFIG_PATH"); p != "" {
		return p
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "tada", FileName)
}

// Load reads path (DefaultPath when empty). A missing file is not an error.
// Invalid values are replaced with defaults and reported to warn.
func Load(path string, warn io.Writer) (Config, error) {
	if warn == nil {
		warn = io.Discard
	}
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Default(), fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	cfg.Normalize(warn)
	return cfg, nil
}

func (c *Config) applyEnv() {
	fields := map[string]*string{
		"STORAGE_BACKEND": &c.StorageBackend,
		"DATA_DIR":        &c.DataDir,
		"THEME":           &c.Theme,
		"LOG_LEVEL":       &c.LogLevel,
		"LOG_FILE":        &c.LogFile,
		"DEFAULT_FILTER":  &c.DefaultFilter,
	}
	for name, dst := range fields {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}
}

// Normalize lower-cases enum values and replaces invalid ones with defaults,
// reporting each replacement to warn.
func (c *Config) Normalize(warn io.Writer) {
	if warn == nil {
		warn = io.Discard
	}
	def := Default()
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	if !slices.Contains(backends.Names, c.StorageBackend) {
		fmt.Fprintf(warn, "invalid storage_backend value '%s': must be one of: %s; using default: %s\n",
			c.StorageBackend, strings.Join(backends.Names, ", "), def.StorageBackend)
		c.StorageBackend = def.StorageBackend
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if !themes[c.Theme] {
		fmt.Fprintf(warn, "invalid theme value '%s': must be one of: classic, mono, neon; using default: %s\n", c.Theme, def.Theme)
		c.Theme = def.Theme
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if !levels[c.LogLevel] {
		fmt.Fprintf(warn, "invalid log_level value '%s': must be one of: debug, error, info, warn; using default: %s\n", c.LogLevel, def.LogLevel)
		c.LogLevel = def.LogLevel
	}
	if _, err := model.ParseFilter(c.DefaultFilter); err != nil {
		fmt.Fprintf(warn, "invalid default_filter value '%s': %v; using default: %s\n", c.DefaultFilter, err, def.DefaultFilter)
		c.DefaultFilter = def.DefaultFilter
	}
	if strings.TrimSpace(c.DataDir) == "" {
		c.DataDir = def.DataDir
	}
}

// Filter is DefaultFilter as a model.Filter.
func (c Config) Filter() model.Filter {
	f, _ := model.ParseFilter(c.DefaultFilter)
	return f
}

// LogPath is LogFile, or tada.log in the data directory.
func (c Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, "tada.log")
}
