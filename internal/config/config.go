// Package config manages ghgcalc settings.
package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all CLI configuration.
type Config struct {
	Dataset    DatasetConfig    `toml:"dataset"`
	Projection ProjectionConfig `toml:"projection"`
	Logging    LoggingConfig    `toml:"logging"`
	Metrics    MetricsConfig    `toml:"metrics"`
}

// DatasetConfig selects the region table.
type DatasetConfig struct {
	Path string `toml:"path"` // empty = built-in samples
}

// ProjectionConfig holds projection defaults.
type ProjectionConfig struct {
	Years int `toml:"years"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level string `toml:"level"` // "info" or "quiet"
	File  string `toml:"file"`
}

// MetricsConfig controls the Prometheus textfile dump.
type MetricsConfig struct {
	Textfile string `toml:"textfile"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Projection: ProjectionConfig{
			Years: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns $GHG_HOME/config.toml.
func DefaultPath() string {
	return filepath.Join(ghgHome(), "config.toml")
}

// LoadConfig reads config from path, falling back to defaults when the
// file does not exist. An empty path means DefaultPath().
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Projection.Years < 0 {
		return cfg, fmt.Errorf("parse config: projection.years must not be negative, got %d", cfg.Projection.Years)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as TOML, creating parent directories.
// Used by `ghgcalc config init`.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

// ApplyLogging points the standard logger at the configured destination.
// The returned closer releases a log file, if one was opened.
func ApplyLogging(lc LoggingConfig, stderr io.Writer) (io.Closer, error) {
	switch strings.ToLower(lc.Level) {
	case "quiet", "off", "none":
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	case "", "info":
	default:
		return nil, fmt.Errorf("unknown log level %q", lc.Level)
	}

	if lc.File == "" {
		log.SetOutput(stderr)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

// ghgHome returns the ghgcalc settings directory.
func ghgHome() string {
	if env := os.Getenv("GHG_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".ghgcalc")
}
