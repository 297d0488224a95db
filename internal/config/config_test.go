package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultFormat != "tree" {
		t.Errorf("Expected DefaultFormat tree, got %q", cfg.DefaultFormat)
	}
	if cfg.FrontmatterLimit != 10 {
		t.Errorf("Expected FrontmatterLimit 10, got %d", cfg.FrontmatterLimit)
	}
	if cfg.FenceToken != "```" {
		t.Errorf("Expected FenceToken backticks, got %q", cfg.FenceToken)
	}
	if cfg.WordWrap != 80 {
		t.Errorf("Expected WordWrap 80, got %d", cfg.WordWrap)
	}
	if cfg.LogFile != "" {
		t.Errorf("Expected file logging off by default, got %q", cfg.LogFile)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "unknown format",
			config: &Config{
				DefaultFormat:    "yaml",
				FrontmatterLimit: 10,
				FenceToken:       "```",
				WordWrap:         80,
			},
			wantErr: true,
		},
		{
			name: "zero frontmatter limit",
			config: &Config{
				DefaultFormat:    "tree",
				FrontmatterLimit: 0,
				FenceToken:       "```",
				WordWrap:         80,
			},
			wantErr: true,
		},
		{
			name: "empty fence token",
			config: &Config{
				DefaultFormat:    "tree",
				FrontmatterLimit: 10,
				FenceToken:       "",
				WordWrap:         80,
			},
			wantErr: true,
		},
		{
			name: "negative word wrap",
			config: &Config{
				DefaultFormat:    "tree",
				FrontmatterLimit: 10,
				FenceToken:       "```",
				WordWrap:         -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	// Create a temporary directory for test config
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")

	// Override ConfigPath for testing
	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	// Create test config
	testCfg := &Config{
		DefaultFormat:    "ascii",
		FrontmatterLimit: 5,
		FenceToken:       "~~~",
		WordWrap:         100,
		LogFile:          "/tmp/tiki-test.log",
	}

	// Save config
	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	// Check file exists
	if _, err := os.Stat(testConfigPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	// Load config
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedCfg.DefaultFormat != "ascii" {
		t.Errorf("DefaultFormat mismatch: got %q, want ascii", loadedCfg.DefaultFormat)
	}
	if loadedCfg.FrontmatterLimit != 5 {
		t.Errorf("FrontmatterLimit mismatch: got %d, want 5", loadedCfg.FrontmatterLimit)
	}
	if loadedCfg.FenceToken != "~~~" {
		t.Errorf("FenceToken mismatch: got %q, want ~~~", loadedCfg.FenceToken)
	}
	if loadedCfg.LogFile == "" {
		t.Error("LogFile should not be empty")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	// Create a temporary directory
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "nonexistent.json")

	// Override ConfigPath for testing
	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	// Load should return default config when file doesn't exist
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}

	// Should return default config
	if cfg.DefaultFormat != "tree" {
		t.Errorf("Expected default format tree, got %q", cfg.DefaultFormat)
	}
}

func TestLoadPartialConfig(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")

	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	// Only one field set; the rest should fall back to defaults
	if err := os.WriteFile(testConfigPath, []byte(`{"default_format": "json"}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DefaultFormat != "json" {
		t.Errorf("DefaultFormat = %q, want json", cfg.DefaultFormat)
	}
	if cfg.FrontmatterLimit != 10 {
		t.Errorf("FrontmatterLimit = %d, want default 10", cfg.FrontmatterLimit)
	}
	if cfg.FenceToken != "```" {
		t.Errorf("FenceToken = %q, want default backticks", cfg.FenceToken)
	}
	if cfg.WordWrap != 80 {
		t.Errorf("WordWrap = %d, want default 80", cfg.WordWrap)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")

	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	if err := os.WriteFile(testConfigPath, []byte(`{"default_format": "yaml"}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should reject an unknown default_format")
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		contains string // The output should contain this
	}{
		{
			name:     "tilde expansion",
			input:    "~/test",
			contains: homeDir,
		},
		{
			name:     "tilde only",
			input:    "~",
			contains: homeDir,
		},
		{
			name:     "absolute path",
			input:    "/tmp/test",
			contains: "/tmp/test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath() error = %v", err)
			}
			if result == "" {
				t.Error("expandPath() returned empty string")
			}
			// Just verify it's not the original unexpanded path
			if tt.input[0] == '~' && result == tt.input {
				t.Errorf("Path was not expanded: %s", result)
			}
		})
	}
}

func TestConfigPathsExpanded(t *testing.T) {
	// Create a temporary directory for test config
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")

	// Override ConfigPath for testing
	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	// Create test config with a tilde path
	testCfg := &Config{
		DefaultFormat:    "tree",
		FrontmatterLimit: 10,
		FenceToken:       "```",
		WordWrap:         80,
		LogFile:          "~/tiki.log",
	}

	// Save and load
	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify the path is expanded (no longer contains ~)
	if loadedCfg.LogFile[0] == '~' {
		t.Error("LogFile was not expanded")
	}
}
