package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/wyrm/internal/gitinfo"
	"github.com/sadopc/wyrm/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewTasks
	viewPomodoro
	viewActivity
)

var viewNames = []string{"Dashboard", "Tasks", "Pomodoro", "Activity"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type dashboardDataMsg struct {
	focus   *store.FocusStats
	open    []store.Task
	active  *store.PomodoroSession
	git     gitinfo.Summary
	gitErr  bool
	loadErr error
}

type tasksDataMsg struct {
	tasks []store.Task
}

type sessionChangedMsg struct {
	session *store.PomodoroSession
}

type activityDataMsg struct {
	summary *store.ActivitySummary
	heatmap []store.HeatmapDay
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatMinutes(m int) string {
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %02dm", m/60, m%60)
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// sessionElapsed is the live elapsed time of an active session,
// extending the persisted minutes with the current run interval.
func sessionElapsed(s *store.PomodoroSession, now time.Time) time.Duration {
	elapsed := time.Duration(s.ElapsedMinutes * float64(time.Minute))
	if s.Status == store.StatusRunning && s.LastResume != nil {
		elapsed += now.Sub(*s.LastResume)
	}
	return elapsed
}
