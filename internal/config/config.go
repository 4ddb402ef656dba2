package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/harrison/tagsearch/internal/fileutil"
	"github.com/harrison/tagsearch/internal/tags"
)

// FileName is the per-directory configuration file looked up by LoadConfigFromDir.
const FileName = ".tagsearch.yaml"

// Config represents tagsearch configuration options
type Config struct {
	// Extensions lists the file extensions searched for tags
	Extensions []string `yaml:"extensions"`

	// ExcludeDirs lists directory names never descended into
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// Ignore lists doublestar globs, relative to the search root, of files to skip
	Ignore []string `yaml:"ignore"`

	// Workers bounds concurrent file reads (0 = one per CPU)
	Workers int `yaml:"workers"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Scanner selects the tag extractor (pattern or scanner)
	Scanner string `yaml:"scanner"`

	// SkipCode ignores tags inside Markdown code blocks and spans
	SkipCode bool `yaml:"skip_code"`

	// OrFilter matches files with ANY keyword rather than ALL
	OrFilter bool `yaml:"or_filter"`

	// Fuzzy matches keywords as case-insensitive substrings
	Fuzzy bool `yaml:"fuzzy"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Extensions:  append([]string(nil), fileutil.DefaultExtensions...),
		ExcludeDirs: []string{"node_modules", "vendor"},
		Ignore:      nil,
		Workers:     0, // One per CPU
		LogLevel:    "warn",
		Scanner:     tags.StrategyPattern,
		SkipCode:    false,
		OrFilter:    false,
		Fuzzy:       false,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Decode on top of the defaults so absent keys keep their default value.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .tagsearch.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, FileName))
}

// Flags carries CLI flag values. Nil fields were not set on the command line.
type Flags struct {
	Workers  *int
	LogLevel *string
	Scanner  *string
	SkipCode *bool
	OrFilter *bool
	Fuzzy    *bool
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(f Flags) {
	if f.Workers != nil {
		c.Workers = *f.Workers
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.Scanner != nil {
		c.Scanner = *f.Scanner
	}
	if f.SkipCode != nil {
		c.SkipCode = *f.SkipCode
	}
	if f.OrFilter != nil {
		c.OrFilter = *f.OrFilter
	}
	if f.Fuzzy != nil {
		c.Fuzzy = *f.Fuzzy
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions cannot be empty")
	}
	for _, ext := range c.Extensions {
		if strings.TrimPrefix(ext, ".") == "" {
			return fmt.Errorf("invalid extension %q", ext)
		}
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if _, err := tags.ExtractorByName(c.Scanner); err != nil {
		return fmt.Errorf("invalid scanner: %w", err)
	}

	for _, pattern := range c.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	return nil
}
