package main

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"runmap/internal/activity"
	"runmap/internal/config"
	"runmap/internal/location"
	"runmap/internal/repo"
	"runmap/internal/source"
	"runmap/internal/tui"
	"runmap/internal/view"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nPlease edit the config file at:\n  %s/config.json\n\n", configDir)
		fmt.Println("Point data.activities_path at your exported activities.json,")
		fmt.Println("or data.database_path at the generator's SQLite database.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Load the pre-baked dataset
	activities, err := loadActivities(cfg)
	if err != nil {
		return fmt.Errorf("loading activities: %w", err)
	}

	// Build the repository and its derivation helpers
	resolver := location.NewResolver(nil)
	titler := &view.Titler{Rich: cfg.RichTitle(), Resolver: resolver}
	repository := repo.New(activities, resolver, titler)

	// Launch TUI
	app := tui.NewApp(repository, cfg.Display)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

func loadActivities(cfg *config.Config) ([]activity.Activity, error) {
	if cfg.Data.DatabasePath != "" {
		return source.LoadDB(cfg.Data.DatabasePath)
	}
	return source.LoadJSON(cfg.Data.ActivitiesPath)
}
