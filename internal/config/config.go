// Package config loads the optional YAML run configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rillian/hilaria/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrBadColumn      = errors.New("invalid column index")
	ErrUnknownLinter  = errors.New("unknown linter name")
)

// Linter names accepted in lint.disable.
var linterNames = map[string]bool{
	"macron":       true,
	"punctuation":  true,
	"whitespace":   true,
	"continuation": true,
}

// Config holds all configuration for a pipeline run.
type Config struct {
	Columns ColumnsConfig `yaml:"columns"`
	HTML    HTMLConfig    `yaml:"html"`
	Lint    LintConfig    `yaml:"lint"`
	Output  OutputConfig  `yaml:"output"`
}

// ColumnsConfig maps line attributes to spreadsheet column indices.
type ColumnsConfig struct {
	Address int `yaml:"address"`
	Text    int `yaml:"text"`
	Note    int `yaml:"note"`
}

// HTMLConfig defines reading-view options.
type HTMLConfig struct {
	Title string `yaml:"title"` // document title (empty = library default)
}

// LintConfig defines which convention checks run.
type LintConfig struct {
	Disable []string `yaml:"disable"` // macron, punctuation, whitespace, continuation
}

// OutputConfig defines where the serializations are written.
type OutputConfig struct {
	Dir string `yaml:"dir"` // empty = alongside the input file
}

// Default returns the configuration matching the spreadsheet export.
func Default() Config {
	return Config{
		Columns: ColumnsConfig{Address: 0, Text: 2, Note: 7},
	}
}

// Load reads and validates a config file. Fields not present keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the --config flag
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks column indices and linter names. Called by Load, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	for name, idx := range map[string]int{
		"columns.address": c.Columns.Address,
		"columns.text":    c.Columns.Text,
		"columns.note":    c.Columns.Note,
	} {
		if idx < 0 {
			return fmt.Errorf("%w: %s = %d", ErrBadColumn, name, idx)
		}
	}
	for _, name := range c.Lint.Disable {
		if !linterNames[name] {
			return fmt.Errorf("%w: %q", ErrUnknownLinter, name)
		}
	}
	return nil
}

// Disabled reports whether the named linter is switched off.
func (c *Config) Disabled(name string) bool {
	for _, n := range c.Lint.Disable {
		if n == name {
			return true
		}
	}
	return false
}
