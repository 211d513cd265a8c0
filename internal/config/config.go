package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Library holds the extension sets and scan filters that describe a photo
// library. Extensions are matched case-insensitively and include the dot.
type Library struct {
	RawExtensions     []string `yaml:"raw_extensions"`     // Raw sensor formats
	PreviewExtensions []string `yaml:"preview_extensions"` // Out-of-camera JPEGs
	SidecarExtensions []string `yaml:"sidecar_extensions"` // Editor sidecars
	Exclude           []string `yaml:"exclude"`            // Glob patterns for directories to skip
}

// Settings holds run behavior.
type Settings struct {
	DryRun   bool   `yaml:"dry_run"`  // If true, simulate operations
	Transfer string `yaml:"transfer"` // Transfer mode for organize: move or copy
	Verbose  bool   `yaml:"verbose"`  // Debug-level logging
}

// WatchMode configures the fsnotify watcher.
type WatchMode struct {
	Enabled bool `yaml:"enabled"` // Enable watch mode
	Settle  int  `yaml:"settle"`  // Seconds to wait after the last event before organizing
}

// Config represents the application configuration structure.
type Config struct {
	Library     Library   `yaml:"library"`
	Settings    Settings  `yaml:"settings"`
	Directories struct {
		Default string `yaml:"default"` // Default camera roll directory
	} `yaml:"directories"`
	WatchMode WatchMode `yaml:"watch_mode"`
}

// LoadConfig loads configuration from the default location
// (~/.config/camroll/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "camroll", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if len(tempCfg.Library.RawExtensions) > 0 {
		cfg.Library.RawExtensions = tempCfg.Library.RawExtensions
	}
	if len(tempCfg.Library.PreviewExtensions) > 0 {
		cfg.Library.PreviewExtensions = tempCfg.Library.PreviewExtensions
	}
	if len(tempCfg.Library.SidecarExtensions) > 0 {
		cfg.Library.SidecarExtensions = tempCfg.Library.SidecarExtensions
	}
	if len(tempCfg.Library.Exclude) > 0 {
		cfg.Library.Exclude = tempCfg.Library.Exclude
	}

	cfg.Settings.DryRun = tempCfg.Settings.DryRun
	cfg.Settings.Verbose = tempCfg.Settings.Verbose
	if tempCfg.Settings.Transfer != "" {
		cfg.Settings.Transfer = tempCfg.Settings.Transfer
	}

	if tempCfg.Directories.Default != "" {
		cfg.Directories.Default = tempCfg.Directories.Default
	}

	cfg.WatchMode.Enabled = tempCfg.WatchMode.Enabled
	if tempCfg.WatchMode.Settle > 0 {
		cfg.WatchMode.Settle = tempCfg.WatchMode.Settle
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Library.RawExtensions = []string{".cr2", ".dng"}
	cfg.Library.PreviewExtensions = []string{".jpg", ".jpeg"}
	cfg.Library.SidecarExtensions = []string{".xmp"}
	// Export and working-copy directories live next to the camera roll but
	// never hold camera originals.
	cfg.Library.Exclude = []string{"*export*", "workspace"}

	cfg.Settings.DryRun = false
	cfg.Settings.Transfer = "move"
	cfg.Settings.Verbose = false

	cfg.Directories.Default = "."

	cfg.WatchMode.Enabled = false
	cfg.WatchMode.Settle = 5

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if c.Settings.Transfer != "move" && c.Settings.Transfer != "copy" {
		return fmt.Errorf("invalid transfer mode: %s", c.Settings.Transfer)
	}

	for _, set := range [][]string{
		c.Library.RawExtensions,
		c.Library.PreviewExtensions,
		c.Library.SidecarExtensions,
	} {
		for _, ext := range set {
			if !strings.HasPrefix(ext, ".") {
				return fmt.Errorf("extension must start with a dot: %s", ext)
			}
		}
	}

	if c.WatchMode.Enabled && c.WatchMode.Settle < 1 {
		return fmt.Errorf("watch settle interval must be >= 1 second")
	}

	return nil
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Settings.DryRun = false
	cfg.Settings.Transfer = "move"
	return cfg
}
