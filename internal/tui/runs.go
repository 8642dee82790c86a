package tui

import (
	"fmt"
	"strings"

	"runmap/internal/activity"
	"runmap/internal/repo"
	"runmap/internal/view"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunsModel is the run table screen: the filtered, sorted run list plus
// the fitted map viewport for the selected run.
type RunsModel struct {
	repo  *repo.Repository
	units Units

	years     []string
	yearIndex int
	reverse   bool

	runs   []activity.Activity
	cursor int
	vp     viewport.Model
	ready  bool
}

// NewRunsModel creates the run table showing the most recent year
func NewRunsModel(r *repo.Repository, units Units) RunsModel {
	m := RunsModel{
		repo:  r,
		units: units,
		years: r.Snapshot().Years,
		vp:    viewport.New(100, 20),
	}
	m.recompute()
	return m
}

func (m *RunsModel) year() string {
	if len(m.years) == 0 {
		return view.FilterAll
	}
	return m.years[m.yearIndex]
}

func (m *RunsModel) recompute() {
	cmp := view.CompareDate
	if m.reverse {
		cmp = view.CompareDateReverse
	}
	m.runs = view.FilterAndSort(m.repo.Activities(), m.year(), view.FilterYear, cmp)
	if m.cursor >= len(m.runs) {
		m.cursor = 0
	}
	m.refreshContent()
}

// Resize adjusts the table viewport to the window
func (m *RunsModel) Resize(width, height int) {
	m.vp.Width = width
	// Leave room for chrome, header, and the detail footer.
	if h := height - 12; h > 3 {
		m.vp.Height = h
	}
	m.ready = true
	m.refreshContent()
}

func (m *RunsModel) refreshContent() {
	var rows []string
	for i := range m.runs {
		a := &m.runs[i]
		line := fmt.Sprintf("%-10.10s  %-28.28s  %8s  %7s  %5s  %9s",
			a.StartDateLocal,
			m.repo.Titler().TitleFor(a),
			m.units.FormatDistanceValue(a.Distance),
			view.FormatPace(a.AverageSpeed),
			formatHeartrate(a.AverageHeartrate),
			view.FormatRunTime(a.MovingTime),
		)
		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(line))
		} else {
			rows = append(rows, tableRowStyle.Render(line))
		}
	}
	m.vp.SetContent(strings.Join(rows, "\n"))
}

func formatHeartrate(hr *float64) string {
	if hr == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f", *hr)
}

// Update handles messages
func (m RunsModel) Update(msg tea.Msg) (RunsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refreshContent()
				m.scrollToCursor()
			}
		case "down", "j":
			if m.cursor < len(m.runs)-1 {
				m.cursor++
				m.refreshContent()
				m.scrollToCursor()
			}
		case "left", "h":
			if m.yearIndex < len(m.years)-1 {
				m.yearIndex++
				m.cursor = 0
				m.recompute()
				m.vp.GotoTop()
			}
		case "right", "l":
			if m.yearIndex > 0 {
				m.yearIndex--
				m.cursor = 0
				m.recompute()
				m.vp.GotoTop()
			}
		case "o":
			m.reverse = !m.reverse
			m.cursor = 0
			m.recompute()
			m.vp.GotoTop()
		default:
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *RunsModel) scrollToCursor() {
	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	} else if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

// View renders the run table with the selected run's details below it
func (m RunsModel) View() string {
	if len(m.runs) == 0 {
		return fmt.Sprintf("\n  No runs in %s.", m.year())
	}

	var sections []string

	order := "newest first"
	if m.reverse {
		order = "oldest first"
	}
	title := cardTitleStyle.Render(fmt.Sprintf("%s: %d runs (%s)", m.year(), len(m.runs), order))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %-28s  %8s  %7s  %5s  %9s",
		"Date", "Title", m.units.DistanceLabel(), "Pace", "BPM", "Time"))
	sections = append(sections, header)
	sections = append(sections, m.vp.View())

	sections = append(sections, m.renderSelected())

	help := statusStyle.Render("j/k select, ←/→ switch year, 'o' flip order")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSelected shows the hover label and fitted viewport for the
// selected run, the terminal stand-in for panning the map to it.
func (m RunsModel) renderSelected() string {
	a := &m.runs[m.cursor]

	fc := view.GeoJSONFor(m.runs[m.cursor:m.cursor+1], m.repo.Resolver(), "")
	vs := view.BoundsFor(fc)

	lines := []string{
		view.TitleForShow(a),
		fmt.Sprintf("map center %.4f, %.4f  zoom %.1f", vs.Longitude, vs.Latitude, vs.Zoom),
	}
	return statusStyle.Render(strings.Join(lines, "\n"))
}
