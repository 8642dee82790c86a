package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Config represents the application configuration
type Config struct {
	Data    DataConfig    `json:"data"`
	Display DisplayConfig `json:"display"`
}

// DataConfig points at the pre-baked activity dataset. At least one of
// the two paths must be set; the database takes precedence when both are.
type DataConfig struct {
	ActivitiesPath string `json:"activities_path"` // exported activities.json
	DatabasePath   string `json:"database_path"`   // generator SQLite database
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	TitleStyle   string `json:"title_style"`   // "rich" or "plain"
	PrimaryColor string `json:"primary_color"` // route/accent color, #rrggbb
	DistanceUnit string `json:"distance_unit"` // "km" or "mi"
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Data: DataConfig{
			ActivitiesPath: "static/activities.json",
		},
		Display: DisplayConfig{
			TitleStyle:   "rich",
			PrimaryColor: "#47b8e0",
			DistanceUnit: "km",
		},
	}
}

// RichTitle reports whether garmin-style synthesized titles are enabled.
func (c *Config) RichTitle() bool {
	return c.Display.TitleStyle != "plain"
}

// Load reads the configuration from ~/.runmap/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Data.ActivitiesPath == "" && cfg.Data.DatabasePath == "" {
		cfg.Data.ActivitiesPath = defaults.Data.ActivitiesPath
	}
	if cfg.Display.TitleStyle == "" {
		cfg.Display.TitleStyle = defaults.Display.TitleStyle
	}
	if cfg.Display.PrimaryColor == "" {
		cfg.Display.PrimaryColor = defaults.Display.PrimaryColor
	}
	if cfg.Display.DistanceUnit == "" {
		cfg.Display.DistanceUnit = defaults.Display.DistanceUnit
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.runmap/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks if the config has required fields
func (c *Config) Validate() error {
	if c.Data.ActivitiesPath == "" && c.Data.DatabasePath == "" {
		return errors.New("data.activities_path or data.database_path is required - point it at your exported dataset")
	}

	if c.Display.TitleStyle != "" && c.Display.TitleStyle != "rich" && c.Display.TitleStyle != "plain" {
		return fmt.Errorf("display.title_style must be \"rich\" or \"plain\", got %q", c.Display.TitleStyle)
	}
	if c.Display.DistanceUnit != "" && c.Display.DistanceUnit != "km" && c.Display.DistanceUnit != "mi" {
		return fmt.Errorf("display.distance_unit must be \"km\" or \"mi\", got %q", c.Display.DistanceUnit)
	}
	if c.Display.PrimaryColor != "" && !colorPattern.MatchString(c.Display.PrimaryColor) {
		return fmt.Errorf("display.primary_color must be a #rrggbb color, got %q", c.Display.PrimaryColor)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".runmap", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".runmap"), nil
}
