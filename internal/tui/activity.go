package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/wyrm/internal/store"
)

const activityDays = 14

type activityModel struct {
	store  *store.Store
	width  int
	height int

	summary *store.ActivitySummary
	heatmap []store.HeatmapDay
	chart   barchart.Model
}

func newActivityModel(s *store.Store) activityModel {
	return activityModel{
		store: s,
		chart: barchart.New(60, 10),
	}
}

func (a *activityModel) setSize(w, h int) {
	a.width = w
	a.height = h
	a.buildChart()
}

func (a activityModel) refresh() tea.Cmd {
	return func() tea.Msg {
		summary, _ := a.store.GetActivitySummary(1)
		heatmap, _ := a.store.GetHeatmap(activityDays)
		return activityDataMsg{summary: summary, heatmap: heatmap}
	}
}

func (a activityModel) update(msg tea.Msg) (activityModel, tea.Cmd) {
	switch msg := msg.(type) {
	case activityDataMsg:
		a.summary = msg.summary
		a.heatmap = msg.heatmap
		a.buildChart()
		return a, nil
	}
	return a, nil
}

func (a *activityModel) buildChart() {
	chartWidth := a.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if a.height > 30 {
		chartHeight = 14
	}

	a.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, day := range a.heatmap {
		label := day.Date
		if d, err := time.ParseInLocation("2006-01-02", day.Date, time.Local); err == nil {
			label = d.Format("Mon 02")
		}

		values := []barchart.BarValue{
			{Name: "active", Value: float64(day.Active), Style: lipgloss.NewStyle().Foreground(colorSuccess)},
			{Name: "typing", Value: float64(day.Typing), Style: lipgloss.NewStyle().Foreground(colorHighlight)},
			{Name: "inactive", Value: float64(day.Inactive), Style: lipgloss.NewStyle().Foreground(colorSubtle)},
		}
		if day.Active == 0 && day.Typing == 0 && day.Inactive == 0 {
			values = []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}}
		}

		bars = append(bars, barchart.BarData{
			Label:  label,
			Values: values,
		})
	}

	a.chart.PushAll(bars)
	a.chart.Draw()
}

func (a activityModel) view() string {
	w := a.width - 4

	var rows []string
	rows = append(rows, titleStyle.Render(fmt.Sprintf("Editor Activity (last %d days)", activityDays)), "")

	if a.summary != nil {
		state := mutedStyle.Render("idle")
		if a.summary.IsTyping {
			state = successStyle.Render("typing")
		} else if a.summary.IsActive {
			state = accentStyle.Render("active")
		}
		rows = append(rows, fmt.Sprintf("Now: %s    last hour: %d active, %d typing, %d inactive",
			state, a.summary.ActiveEvents, a.summary.TypingEvents, a.summary.InactiveEvents))
		rows = append(rows, "")
	}

	if len(a.heatmap) == 0 {
		rows = append(rows, mutedStyle.Render("No editor events recorded yet."))
	} else {
		rows = append(rows, a.chart.View())
		legend := lipgloss.JoinHorizontal(lipgloss.Top,
			successStyle.Render("■ active  "),
			highlightStyle.Render("■ typing  "),
			mutedStyle.Render("■ inactive"),
		)
		rows = append(rows, "", legend)
	}

	content := strings.Join(rows, "\n")
	return panelStyle.Width(w).Render(content)
}
