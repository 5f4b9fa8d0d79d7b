package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/jobtrack/internal/models"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// DatabasePath overrides ~/.jobtrack/job_tracker.db when set
	DatabasePath string `yaml:"database_path,omitempty"`
	// ExportDir is where the TUI writes CSV exports
	ExportDir string `yaml:"export_dir,omitempty"`
	// DefaultSort is "date" or "priority"
	DefaultSort string `yaml:"default_sort,omitempty"`

	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from JOBTRACK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("JOBTRACK_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("theme file not readable", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("theme file not valid yaml", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom reads the config at path, falling back to defaults when the
// file is missing. Keys absent from the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Theme file colors are applied before defaults fill remaining gaps
	loadThemeFile(&config)
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as YAML to path
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// SortKey returns the configured default sort, falling back to date applied
// when the value is not recognised.
func (c *Config) SortKey() models.SortKey {
	key, err := models.ParseSortKey(c.DefaultSort)
	if err != nil {
		slog.Warn("unknown default_sort in config, using date", "value", c.DefaultSort)
		return models.SortDateApplied
	}
	return key
}

// ResolvedDatabasePath returns DatabasePath with a leading ~ expanded.
// Empty means the database package default.
func (c *Config) ResolvedDatabasePath() string {
	return ExpandHome(c.DatabasePath)
}

// ResolvedExportDir returns ExportDir with a leading ~ expanded
func (c *Config) ResolvedExportDir() string {
	return ExpandHome(c.ExportDir)
}

// ExpandHome replaces a leading "~" with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "jobtrack", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "jobtrack", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	if c.DefaultSort == "" {
		c.DefaultSort = "date"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
