// Package config loads clap-info settings from TOML.
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

// Config represents the top-level application configuration.
type Config struct {
	Scan   ScanConfig   `toml:"scan"`
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
}

// ScanConfig holds settings for bundle discovery.
type ScanConfig struct {
	ExtraPaths  []string `toml:"extra_paths"`
	UseClapPath bool     `toml:"use_clap_path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	Format string `toml:"format"`
	Indent int    `toml:"indent"`
}

// Output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// ClapPathEnv lists extra search directories, separated by the OS path list
// separator.
const ClapPathEnv = "CLAP_PATH"

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			UseClapPath: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Output: OutputConfig{
			Format: FormatJSON,
			Indent: 2,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/clap-info/config.toml or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "clap-info", "config.toml"), nil
}

// Load reads path over DefaultConfig. An empty path means DefaultPath, and a
// missing default file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that have a closed set.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatJSON, FormatYAML, FormatText:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("negative output indent %d", c.Output.Indent)
	}
	return nil
}

// SearchPaths returns the configured extra directories followed by the
// entries of CLAP_PATH when enabled.
func (c *Config) SearchPaths() []string {
	paths := append([]string(nil), c.Scan.ExtraPaths...)
	if !c.Scan.UseClapPath {
		return paths
	}
	for _, p := range filepath.SplitList(os.Getenv(ClapPathEnv)) {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
