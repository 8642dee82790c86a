package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Data.ActivitiesPath != "static/activities.json" {
		t.Errorf("ActivitiesPath = %q", cfg.Data.ActivitiesPath)
	}
	if cfg.Display.TitleStyle != "rich" || cfg.Display.DistanceUnit != "km" {
		t.Errorf("unexpected display defaults: %+v", cfg.Display)
	}
	if cfg.Display.PrimaryColor != "#47b8e0" {
		t.Errorf("PrimaryColor = %q", cfg.Display.PrimaryColor)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestRichTitle(t *testing.T) {
	tests := []struct {
		style    string
		expected bool
	}{
		{"rich", true},
		{"", true},
		{"plain", false},
	}

	for _, tt := range tests {
		cfg := Config{Display: DisplayConfig{TitleStyle: tt.style}}
		if got := cfg.RichTitle(); got != tt.expected {
			t.Errorf("RichTitle with style %q = %v, want %v", tt.style, got, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			"valid with activities path",
			Config{Data: DataConfig{ActivitiesPath: "a.json"}},
			false,
		},
		{
			"valid with database path",
			Config{Data: DataConfig{DatabasePath: "data.db"}},
			false,
		},
		{
			"no data source",
			Config{},
			true,
		},
		{
			"bad title style",
			Config{
				Data:    DataConfig{ActivitiesPath: "a.json"},
				Display: DisplayConfig{TitleStyle: "fancy"},
			},
			true,
		},
		{
			"bad distance unit",
			Config{
				Data:    DataConfig{ActivitiesPath: "a.json"},
				Display: DisplayConfig{DistanceUnit: "furlongs"},
			},
			true,
		},
		{
			"bad color",
			Config{
				Data:    DataConfig{ActivitiesPath: "a.json"},
				Display: DisplayConfig{PrimaryColor: "blue"},
			},
			true,
		},
		{
			"short hex color",
			Config{
				Data:    DataConfig{ActivitiesPath: "a.json"},
				Display: DisplayConfig{PrimaryColor: "#fff"},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load()
	if !errors.Is(err, ErrNoConfig) {
		t.Errorf("Load with no config file = %v, want ErrNoConfig", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Data.DatabasePath = "run_page.db"
	cfg.Display.TitleStyle = "plain"
	if err := Save(&cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Data.DatabasePath != "run_page.db" {
		t.Errorf("DatabasePath = %q", loaded.Data.DatabasePath)
	}
	if loaded.Display.TitleStyle != "plain" {
		t.Errorf("TitleStyle = %q", loaded.Display.TitleStyle)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".runmap")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	partial := `{"data": {"database_path": "data.db"}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(partial), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data.ActivitiesPath != "" {
		t.Errorf("ActivitiesPath = %q, want empty when a database is set", cfg.Data.ActivitiesPath)
	}
	if cfg.Display.TitleStyle != "rich" || cfg.Display.PrimaryColor != "#47b8e0" || cfg.Display.DistanceUnit != "km" {
		t.Errorf("defaults not applied: %+v", cfg.Display)
	}
}

func TestCreateExampleDoesNotOverwrite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Data.ActivitiesPath = "custom.json"
	if err := Save(&cfg); err != nil {
		t.Fatal(err)
	}

	if err := CreateExample(); err != nil {
		t.Fatalf("CreateExample: %v", err)
	}
	loaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Data.ActivitiesPath != "custom.json" {
		t.Error("CreateExample overwrote an existing config")
	}
}
