package tui

import (
	"fmt"
	"sort"
	"strings"

	"runmap/internal/repo"
	"runmap/internal/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PlacesModel is the location stats screen: cities by distance, plus the
// provinces and countries the runs touched.
type PlacesModel struct {
	repo  *repo.Repository
	units Units
}

// NewPlacesModel creates a new places model
func NewPlacesModel(r *repo.Repository, units Units) PlacesModel {
	return PlacesModel{repo: r, units: units}
}

// Update handles messages
func (m PlacesModel) Update(msg tea.Msg) (PlacesModel, tea.Cmd) {
	return m, nil
}

// View renders the location stats
func (m PlacesModel) View() string {
	snapshot := m.repo.Snapshot()

	var sections []string
	sections = append(sections, m.renderCities(snapshot))

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList("Provinces", snapshot.Provinces),
		"  ",
		m.renderList("Countries", snapshot.Countries),
	)
	sections = append(sections, row)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m PlacesModel) renderCities(snapshot *repo.Snapshot) string {
	title := cardTitleStyle.Render("Cities by Distance")

	names := make([]string, 0, len(snapshot.Cities))
	for name := range snapshot.Cities {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if snapshot.Cities[names[i]] != snapshot.Cities[names[j]] {
			return snapshot.Cities[names[i]] > snapshot.Cities[names[j]]
		}
		return names[i] < names[j]
	})

	var lines []string
	for _, name := range names {
		meters := fmt.Sprintf("%.0f", snapshot.Cities[name])
		lines = append(lines, RenderMetric(name, view.IntComma(meters)+" m"))
	}
	if len(lines) == 0 {
		lines = append(lines, "No resolved cities")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m PlacesModel) renderList(title string, items []string) string {
	head := cardTitleStyle.Render(title)
	body := "None resolved"
	if len(items) > 0 {
		body = strings.Join(items, "\n")
	}
	return cardStyle.Width(30).Render(lipgloss.JoinVertical(lipgloss.Left, head, body))
}
