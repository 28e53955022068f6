package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds user settings. Command-line flags override file values.
type Config struct {
	Backend       string `yaml:"backend"`         // "x11" or "fixture"
	Fixture       string `yaml:"fixture"`         // fixture file for the fixture backend
	Format        string `yaml:"format"`          // "yaml", "json", or "" for auto
	LogLevel      string `yaml:"log_level"`       // debug, info, warn, error
	MaxOwnerDepth int    `yaml:"max_owner_depth"` // bound on owner-chain walks
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Backend:       "x11",
		LogLevel:      "warn",
		MaxOwnerDepth: 64,
	}
}

// DefaultPath returns ~/.config/winfind/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "winfind", "config.yaml"), nil
}

// Load reads the config file at path on top of the defaults. A missing file
// is not an error unless required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// Relative fixture paths are resolved against the config file.
	if cfg.Fixture != "" && !filepath.IsAbs(cfg.Fixture) {
		cfg.Fixture = filepath.Join(filepath.Dir(path), cfg.Fixture)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Backend) == "" {
		return fmt.Errorf("backend: must not be empty")
	}
	switch c.Format {
	case "", "yaml", "json":
	default:
		return fmt.Errorf("format: unsupported value %q (use yaml or json)", c.Format)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.MaxOwnerDepth < 1 {
		return fmt.Errorf("max_owner_depth: must be at least 1, got %d", c.MaxOwnerDepth)
	}
	return nil
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown level %q (use debug, info, warn, or error)", s)
	}
}

// NewLogger builds the stderr text logger used by every command.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
