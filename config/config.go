package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Tokenizer backends.
const (
	BackendDict       = "dict"
	BackendWhitespace = "whitespace"
)

// Config holds all configuration for plagcheck.
type Config struct {
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Batch     BatchConfig     `yaml:"batch"`
	History   HistoryConfig   `yaml:"history"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// TokenizerConfig selects the segmentation backend.
type TokenizerConfig struct {
	Backend   string `yaml:"backend"`    // "dict" or "whitespace"
	Stemming  bool   `yaml:"stemming"`   // whitespace backend only
	CacheSize int    `yaml:"cache_size"` // token cache entries for batch runs
}

// BatchConfig holds candidate discovery patterns for batch runs.
type BatchConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// HistoryConfig controls the run history ledger.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tokenizer: TokenizerConfig{
			Backend:   BackendDict,
			Stemming:  false,
			CacheSize: 128,
		},
		Batch: BatchConfig{
			Includes: []string{"**/*.txt"},
			Excludes: []string{"**/.plagcheck/**"},
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Tokenizer.Backend {
	case BackendDict, BackendWhitespace:
	default:
		return fmt.Errorf("tokenizer.backend: unsupported value %q", c.Tokenizer.Backend)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if c.Tokenizer.CacheSize < 0 {
		return fmt.Errorf("tokenizer.cache_size: must not be negative, got %d", c.Tokenizer.CacheSize)
	}
	return nil
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for plagcheck.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "plagcheck.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".plagcheck", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// HistoryDBPath returns the path to the history database.
func HistoryDBPath(dir string) string {
	return filepath.Join(dir, ".plagcheck", "history.db")
}

// EnsureDataDir ensures the .plagcheck directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".plagcheck"), 0755)
}
