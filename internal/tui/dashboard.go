package tui

import (
	"fmt"
	"sort"
	"strconv"

	"runmap/internal/repo"
	"runmap/internal/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the yearly dashboard screen model
type DashboardModel struct {
	repo  *repo.Repository
	units Units

	years     []string
	yearIndex int

	summary view.Summary
	monthly []float64 // distance per month, user's unit
}

// NewDashboardModel creates a dashboard showing the most recent year
func NewDashboardModel(r *repo.Repository, units Units) DashboardModel {
	m := DashboardModel{
		repo:  r,
		units: units,
		years: r.Snapshot().Years,
	}
	m.recompute()
	return m
}

func (m *DashboardModel) year() string {
	if len(m.years) == 0 {
		return ""
	}
	return m.years[m.yearIndex]
}

func (m *DashboardModel) recompute() {
	runs := view.FilterAndSort(m.repo.Activities(), m.year(), view.FilterYear, view.CompareDate)
	m.summary = view.Summarize(runs)

	divisor := metersPerKm
	if m.units.cfg.DistanceUnit == "mi" {
		divisor = metersPerMile
	}
	m.monthly = make([]float64, 12)
	for i := range runs {
		d := runs[i].StartDateLocal
		if len(d) < 7 {
			continue
		}
		month, err := strconv.Atoi(d[5:7])
		if err != nil || month < 1 || month > 12 {
			continue
		}
		m.monthly[month-1] += runs[i].Distance / divisor
	}
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if m.yearIndex < len(m.years)-1 {
				m.yearIndex++
				m.recompute()
			}
		case "right", "l":
			if m.yearIndex > 0 {
				m.yearIndex--
				m.recompute()
			}
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if len(m.years) == 0 {
		return "\n  No activities in the dataset."
	}

	var sections []string

	yearCard := m.renderYearCard()
	titleCard := m.renderTitleCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, yearCard, "  ", titleCard)
	sections = append(sections, topRow)

	sections = append(sections, m.renderChart())

	help := statusStyle.Render("←/→ switch year, '2' for the run table, '3' for places")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderYearCard() string {
	title := cardTitleStyle.Render(m.year() + " Running")

	lines := []string{
		RenderMetric("Runs", fmt.Sprintf("%d", m.summary.Count)),
		RenderMetric("Distance", m.units.FormatDistance(m.summary.Distance)),
		RenderMetric("Time", view.FormatRunTime(m.summary.MovingTime)),
		RenderMetric("Avg Pace", view.FormatPace(m.summary.AverageSpeed())),
		RenderMetric("Best Streak", fmt.Sprintf("%d days", m.summary.MaxStreak)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderTitleCard() string {
	title := cardTitleStyle.Render("All-Time Titles")

	snapshot := m.repo.Snapshot()
	top := topTitles(snapshot.TitleCounts, 5)

	var lines []string
	for _, t := range top {
		lines = append(lines, RenderMetric(t.name, fmt.Sprintf("%d", t.count)))
	}
	if len(lines) == 0 {
		lines = append(lines, "No titles yet")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderChart() string {
	title := cardTitleStyle.Render(fmt.Sprintf("%s Distance by Month (%s)", m.year(), m.units.DistanceLabel()))

	graph := asciigraph.Plot(m.monthly,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

type titleCount struct {
	name  string
	count int
}

// topTitles returns the n most frequent titles, ties broken by name so the
// output is stable.
func topTitles(counts map[string]int, n int) []titleCount {
	all := make([]titleCount, 0, len(counts))
	for name, count := range counts {
		all = append(all, titleCount{name, count})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].name < all[j].name
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}
