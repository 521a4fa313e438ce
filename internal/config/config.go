// Package config handles loading and saving user configuration for rollone.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration for rollone.
type Config struct {
	MaxReplyLength int           `yaml:"max_reply_length"` // 0 disables the limit
	MaxDepth       int           `yaml:"max_depth"`        // inline table nesting cap
	Footer         string        `yaml:"footer"`           // appended to every reply
	History        HistoryConfig `yaml:"history"`
	Log            LogConfig     `yaml:"log"`
}

// HistoryConfig controls the roll history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"` // defaults to history.db in the config dir
	Limit   int    `yaml:"limit"`          // rows kept after pruning
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		MaxReplyLength: 10000,
		MaxDepth:       4,
		Footer:         "\n\n-----\n\n*Rolled by rollone.*",
		History: HistoryConfig{
			Enabled: true,
			Limit:   50,
		},
		Log: LogConfig{
			Level:    "warn",
			Encoding: "console",
		},
	}
}

// Load reads configuration from a YAML file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// LoadDir loads config.yaml from dir, falling back to defaults when the file
// does not exist.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// HistoryPath returns where the history database lives for a config dir.
func (c *Config) HistoryPath(dir string) string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(dir, "history.db")
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rollone"), nil
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
