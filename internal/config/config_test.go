package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Projection.Years != 10 {
		t.Errorf("Projection.Years = %d, want %d", cfg.Projection.Years, 10)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Dataset.Path != "" {
		t.Errorf("Dataset.Path = %q, want built-in samples", cfg.Dataset.Path)
	}
}

func TestDefaultPath_GHGHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GHG_HOME", dir)

	if got, want := DefaultPath(), filepath.Join(dir, "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[dataset]
path = "/data/regions.yaml"

[projection]
years = 25
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Dataset.Path != "/data/regions.yaml" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Projection.Years != 25 {
		t.Errorf("Projection.Years = %d, want 25", cfg.Projection.Years)
	}
	// Unset sections keep their defaults.
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"malformed":      "[projection\nyears = ",
		"negative years": "[projection]\nyears = -3\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".toml")
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig() should fail")
			}
		})
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Metrics.Textfile = "/tmp/ghg.prom"
	cfg.Projection.Years = 3

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestApplyLogging(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	var buf bytes.Buffer
	c, err := ApplyLogging(LoggingConfig{Level: "info"}, &buf)
	if err != nil {
		t.Fatalf("ApplyLogging(info) error: %v", err)
	}
	c.Close()
	log.Print("[test] visible")
	if !strings.Contains(buf.String(), "[test] visible") {
		t.Errorf("info logging not written to stderr writer: %q", buf.String())
	}

	buf.Reset()
	c, err = ApplyLogging(LoggingConfig{Level: "quiet"}, &buf)
	if err != nil {
		t.Fatalf("ApplyLogging(quiet) error: %v", err)
	}
	c.Close()
	log.Print("[test] hidden")
	if buf.Len() != 0 {
		t.Errorf("quiet logging wrote %q", buf.String())
	}

	if _, err := ApplyLogging(LoggingConfig{Level: "verbose"}, &buf); err == nil {
		t.Error("unknown level should fail")
	}
}

func TestApplyLogging_File(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "ghgcalc.log")
	c, err := ApplyLogging(LoggingConfig{Level: "info", File: path}, os.Stderr)
	if err != nil {
		t.Fatalf("ApplyLogging(file) error: %v", err)
	}
	log.Print("[test] to file")
	c.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "[test] to file") {
		t.Errorf("log file = %q", data)
	}
}
