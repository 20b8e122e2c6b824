package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/wyrm/internal/store"
)

type pomodoroModel struct {
	store  *store.Store
	width  int
	height int

	session *store.PomodoroSession
	stats   *store.PomodoroStats
	now     time.Time
}

func newPomodoroModel(s *store.Store) pomodoroModel {
	return pomodoroModel{store: s, now: time.Now()}
}

func (p *pomodoroModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p pomodoroModel) refresh() tea.Cmd {
	return func() tea.Msg {
		session, _ := p.store.ActiveSession()
		return sessionChangedMsg{session: session}
	}
}

func (p pomodoroModel) loadStats() tea.Cmd {
	return func() tea.Msg {
		stats, _ := p.store.GetPomodoroStats("today")
		return pomodoroStatsMsg{stats: stats}
	}
}

type pomodoroStatsMsg struct {
	stats *store.PomodoroStats
}

func (p pomodoroModel) update(msg tea.Msg) (pomodoroModel, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionChangedMsg:
		p.session = msg.session
		return p, nil

	case pomodoroStatsMsg:
		p.stats = msg.stats
		return p, nil

	case tickMsg:
		p.now = time.Time(msg)
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			return p, p.start()
		case key.Matches(msg, keys.Pause):
			return p, p.pauseOrResume()
		case key.Matches(msg, keys.Stop):
			return p, p.stop()
		}
	}
	return p, nil
}

func (p pomodoroModel) start() tea.Cmd {
	return func() tea.Msg {
		minutes := p.store.GetSettingInt("focus_minutes", 25)
		session, err := p.store.StartSession(store.ModeFocus, minutes)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("start failed: %v", err), isError: true}
		}
		return sessionChangedMsg{session: session}
	}
}

func (p pomodoroModel) pauseOrResume() tea.Cmd {
	return func() tea.Msg {
		if p.session == nil {
			return statusMsg{text: "no active session", isError: true}
		}
		var (
			session *store.PomodoroSession
			err     error
		)
		if p.session.Status == store.StatusRunning {
			session, err = p.store.PauseSession()
		} else {
			session, err = p.store.ResumeSession()
		}
		if err != nil {
			return statusMsg{text: fmt.Sprintf("session: %v", err), isError: true}
		}
		return sessionChangedMsg{session: session}
	}
}

func (p pomodoroModel) stop() tea.Cmd {
	return func() tea.Msg {
		if _, err := p.store.StopSession(); err != nil {
			return statusMsg{text: fmt.Sprintf("stop failed: %v", err), isError: true}
		}
		return sessionChangedMsg{session: nil}
	}
}

func (p pomodoroModel) view() string {
	w := p.width - 4

	var rows []string
	rows = append(rows, titleStyle.Render("Pomodoro"), "")

	if p.session == nil {
		rows = append(rows,
			timerStyle.Render("--:--"),
			"",
			mutedStyle.Render("No active session. Press s to start focusing."),
		)
	} else {
		planned := time.Duration(p.session.DurationMinutes) * time.Minute
		remaining := planned - sessionElapsed(p.session, p.now)

		clock := timerStyle.Render(formatClock(remaining))
		if remaining <= 0 {
			clock = successStyle.Render("Done! Press x to stop.")
		}

		state := accentStyle.Render(p.session.Mode)
		if p.session.Status == store.StatusPaused {
			state = warningStyle.Render("paused")
		}

		rows = append(rows,
			clock,
			"",
			fmt.Sprintf("%s  planned %dm  started %s",
				state, p.session.DurationMinutes, p.session.StartTime.Format("15:04")),
		)
	}

	rows = append(rows, "")
	if p.stats != nil {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf(
			"Today: %s across %d sessions",
			formatMinutes(int(p.stats.TotalFocusMinutes)), p.stats.TotalSessions)))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("s: start  space: pause/resume  x: stop"))

	content := strings.Join(rows, "\n")
	return lipgloss.JoinVertical(lipgloss.Left, panelStyle.Width(w).Render(content))
}
