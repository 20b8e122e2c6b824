package store

import "time"

// Session modes and statuses.
const (
	ModeFocus = "focus"
	ModeBreak = "break"

	StatusRunning = "running"
	StatusPaused  = "paused"
	StatusStopped = "stopped"
)

// Task statuses and priorities.
const (
	TaskTodo  = "todo"
	TaskDoing = "doing"
	TaskDone  = "done"

	PriorityLow  = "low"
	PriorityMed  = "med"
	PriorityHigh = "high"
)

// Activity event types.
const (
	EventActive   = "active"
	EventInactive = "inactive"
	EventTyping   = "typing"
)

// PomodoroSession is one focus-or-break interval with a
// start/pause/resume/stop lifecycle. Elapsed minutes accumulate from
// wall-clock deltas at each transition; there is no background timer.
type PomodoroSession struct {
	ID              int64
	Mode            string
	Status          string
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes int
	ElapsedMinutes  float64
	LastResume      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FocusSegment is a completed work or break interval recorded by the
// CLI countdown. Append-only.
type FocusSegment struct {
	ID      int64
	StartTS time.Time
	EndTS   time.Time
	Minutes int
	Kind    string
}

type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    string
	DueDate     *string // calendar date, 2006-01-02
	Status      string
	DoneAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskPatch is a partial task update. Nil means "leave unchanged";
// a pointer to the zero value means "explicitly clear/set".
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *string
	DueDate     *string // empty string clears the due date
	Status      *string
}

type ActivityEvent struct {
	ID        int64
	EventType string
	Details   string
	CreatedAt time.Time
}

type ActivitySummary struct {
	WindowHours    int
	Since          time.Time
	LastActiveAt   *time.Time
	LastTypingAt   *time.Time
	LastInactiveAt *time.Time
	ActiveEvents   int
	TypingEvents   int
	InactiveEvents int
	IsActive       bool
	IsTyping       bool
}

// HeatmapDay is one calendar day of per-type event counts.
type HeatmapDay struct {
	Date     string
	Active   int
	Typing   int
	Inactive int
}

// TimelineBucket is one fixed-width time-of-day interval within a
// single date.
type TimelineBucket struct {
	StartTime string // HH:MM
	Active    int
	Typing    int
	Inactive  int
}

// FocusStats summarizes completed work segments.
type FocusStats struct {
	TodayMinutes  int
	TodaySessions int
	WeekMinutes   int
	WeekSessions  int
	StreakDays    int
}

// PomodoroStats sums stopped focus-mode sessions over a range.
type PomodoroStats struct {
	Range             string
	TotalFocusMinutes float64
	TotalSessions     int
}

type ReadmeRecord struct {
	ID        int64
	Kind      string
	Title     string
	Style     string
	Path      string
	CreatedAt time.Time
}

type Setting struct {
	Key   string
	Value string
}
