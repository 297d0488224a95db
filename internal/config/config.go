package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/gerunddev/tiki/internal/parser"
)

// Config represents the tiki configuration
type Config struct {
	DefaultFormat    string `json:"default_format"`
	FrontmatterLimit int    `json:"frontmatter_limit"`
	FenceToken       string `json:"fence_token"`
	WordWrap         int    `json:"word_wrap"`
	LogFile          string `json:"log_file,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultFormat:    "tree",
		FrontmatterLimit: parser.DefaultFrontmatterLimit,
		FenceToken:       parser.DefaultFenceToken,
		WordWrap:         80,
		LogFile:          "", // File logging off unless configured
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "tiki", "config.json")
	}
	return filepath.Join(home, ".config", "tiki", "config.json")
}

// Load reads configuration from the XDG config directory
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Unset fields take the defaults
	defaults := DefaultConfig()
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = defaults.DefaultFormat
	}
	if cfg.FrontmatterLimit == 0 {
		cfg.FrontmatterLimit = defaults.FrontmatterLimit
	}
	if cfg.FenceToken == "" {
		cfg.FenceToken = defaults.FenceToken
	}
	if cfg.WordWrap == 0 {
		cfg.WordWrap = defaults.WordWrap
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the XDG config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validFormats := map[string]bool{
		"tree":  true,
		"ascii": true,
		"json":  true,
	}
	if !validFormats[c.DefaultFormat] {
		return fmt.Errorf("invalid default_format '%s': must be one of: tree, ascii, json", c.DefaultFormat)
	}

	if c.FrontmatterLimit <= 0 {
		return fmt.Errorf("frontmatter_limit must be positive")
	}
	if c.FenceToken == "" {
		return fmt.Errorf("fence_token cannot be empty")
	}
	if c.WordWrap <= 0 {
		return fmt.Errorf("word_wrap must be positive")
	}

	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	if c.LogFile == "" {
		return nil
	}

	expanded, err := expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}
	c.LogFile = expanded

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
