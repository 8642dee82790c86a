package tui

import (
	"runmap/internal/config"
	"runmap/internal/repo"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenRuns
	ScreenPlaces
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	dashboard DashboardModel
	runs      RunsModel
	places    PlacesModel
	help      HelpModel

	repo  *repo.Repository
	units Units

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App over the loaded repository
func NewApp(r *repo.Repository, display config.DisplayConfig) *App {
	SetPrimaryColor(display.PrimaryColor)
	units := NewUnits(display)
	return &App{
		screen:    ScreenDashboard,
		repo:      r,
		units:     units,
		dashboard: NewDashboardModel(r, units),
		runs:      NewRunsModel(r, units),
		places:    NewPlacesModel(r, units),
		help:      NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenDashboard
			return a, nil
		case "2":
			a.screen = ScreenRuns
			return a, nil
		case "3":
			a.screen = ScreenPlaces
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
			}
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.runs.Resize(msg.Width, msg.Height)
	}

	// Delegate to the active screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case ScreenRuns:
		a.runs, cmd = a.runs.Update(msg)
	case ScreenPlaces:
		a.places, cmd = a.places.Update(msg)
	case ScreenHelp:
		a.help, cmd = a.help.Update(msg)
	}
	return a, cmd
}

// View renders the app chrome plus the active screen
func (a *App) View() string {
	title := titleStyle.Render("runmap")
	nav := a.renderNav()

	var body string
	switch a.screen {
	case ScreenDashboard:
		body = a.dashboard.View()
	case ScreenRuns:
		body = a.runs.View()
	case ScreenPlaces:
		body = a.places.View()
	case ScreenHelp:
		body = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, nav, body)
}

func (a *App) renderNav() string {
	items := []struct {
		screen Screen
		label  string
	}{
		{ScreenDashboard, "[1] Dashboard"},
		{ScreenRuns, "[2] Runs"},
		{ScreenPlaces, "[3] Places"},
		{ScreenHelp, "[?] Help"},
	}

	nav := ""
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}
		if item.screen == a.screen {
			nav += navActiveStyle.Render(item.label)
		} else {
			nav += item.label
		}
	}
	return navStyle.Render(nav)
}
