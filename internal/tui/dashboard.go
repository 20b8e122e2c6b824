package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/wyrm/internal/gitinfo"
	"github.com/sadopc/wyrm/internal/store"
)

type dashboardModel struct {
	store  *store.Store
	width  int
	height int

	focus  *store.FocusStats
	open   []store.Task
	active *store.PomodoroSession
	git    gitinfo.Summary
	now    time.Time
}

func newDashboardModel(s *store.Store) dashboardModel {
	return dashboardModel{store: s, now: time.Now()}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) Init() tea.Cmd {
	return d.loadData()
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		msg := dashboardDataMsg{}
		msg.focus, msg.loadErr = d.store.GetFocusStats()
		msg.open, _ = d.store.ListTasks("open")
		msg.active, _ = d.store.ActiveSession()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		cwd, err := os.Getwd()
		if err == nil {
			msg.git = gitinfo.Collect(ctx, cwd)
		} else {
			msg.gitErr = true
		}
		return msg
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.focus = msg.focus
		d.open = msg.open
		d.active = msg.active
		d.git = msg.git
		return d, nil

	case tickMsg:
		d.now = time.Time(msg)
		return d, nil

	case sessionChangedMsg:
		d.active = msg.session
		return d, nil
	}
	return d, nil
}

func (d dashboardModel) isRunning() bool {
	return d.active != nil
}

func (d dashboardModel) isPaused() bool {
	return d.active != nil && d.active.Status == store.StatusPaused
}

func (d dashboardModel) elapsed() time.Duration {
	if d.active == nil {
		return 0
	}
	return sessionElapsed(d.active, d.now)
}

func (d dashboardModel) view() string {
	w := d.width - 4

	focusPanel := d.renderFocusPanel(w/2 - 2)
	gitPanel := d.renderGitPanel(w/2 - 2)
	top := lipgloss.JoinHorizontal(lipgloss.Top, focusPanel, " ", gitPanel)

	tasksPanel := d.renderTasksPanel(w)

	return lipgloss.JoinVertical(lipgloss.Left, top, tasksPanel)
}

func (d dashboardModel) renderFocusPanel(w int) string {
	title := titleStyle.Render("Focus")

	var rows []string
	rows = append(rows, title, "")

	if d.active != nil {
		label := successStyle.Render("● " + d.active.Mode)
		if d.active.Status == store.StatusPaused {
			label = warningStyle.Render("⏸ " + d.active.Mode)
		}
		rows = append(rows, fmt.Sprintf("%s  %s", label, formatClock(d.elapsed())))
		rows = append(rows, "")
	}

	if d.focus != nil {
		rows = append(rows,
			fmt.Sprintf("Today  %s in %d sessions",
				highlightStyle.Render(formatMinutes(d.focus.TodayMinutes)), d.focus.TodaySessions),
			fmt.Sprintf("Week   %s in %d sessions",
				highlightStyle.Render(formatMinutes(d.focus.WeekMinutes)), d.focus.WeekSessions),
			fmt.Sprintf("Streak %s", accentStyle.Render(fmt.Sprintf("%d days", d.focus.StreakDays))),
		)
	} else {
		rows = append(rows, mutedStyle.Render("No focus data yet"))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderGitPanel(w int) string {
	title := titleStyle.Render("Git")

	var rows []string
	rows = append(rows, title, "")

	switch {
	case d.git.Error != "":
		rows = append(rows, errorStyle.Render(d.git.Error))
	case !d.git.IsRepo:
		rows = append(rows, mutedStyle.Render("Not a git repository"))
	default:
		branch := "-"
		if d.git.Branch != nil {
			branch = *d.git.Branch
		}
		dirty := "-"
		if d.git.DirtyCount != nil {
			dirty = fmt.Sprintf("%d", *d.git.DirtyCount)
		}
		last := "-"
		if d.git.LastCommit != nil {
			last = *d.git.LastCommit
		}
		rows = append(rows,
			"Branch      "+highlightStyle.Render(branch),
			"Dirty files "+dirty,
			"Last commit "+mutedStyle.Render(last),
		)
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderTasksPanel(w int) string {
	title := titleStyle.Render("Open Tasks")

	var rows []string
	rows = append(rows, title, "")

	if len(d.open) == 0 {
		rows = append(rows, mutedStyle.Render("No open tasks. The roost is calm."))
	} else {
		shown := d.open
		if len(shown) > 8 {
			shown = shown[:8]
		}
		for _, t := range shown {
			due := ""
			if t.DueDate != nil {
				due = mutedStyle.Render("  due " + *t.DueDate)
			}
			rows = append(rows, fmt.Sprintf("  %s %s%s", priorityDot(t.Priority), t.Title, due))
		}
		if len(d.open) > 8 {
			rows = append(rows, mutedStyle.Render(fmt.Sprintf("  … and %d more", len(d.open)-8)))
		}
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func priorityDot(priority string) string {
	switch priority {
	case store.PriorityHigh:
		return errorStyle.Render("●")
	case store.PriorityLow:
		return mutedStyle.Render("●")
	default:
		return warningStyle.Render("●")
	}
}
