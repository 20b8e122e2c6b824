package api

import (
	"time"

	"github.com/sadopc/wyrm/internal/store"
)

// Wire timestamps use the local "2006-01-02 15:04:05" layout that the
// store persists, not RFC 3339.
const timeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string { return t.Format(timeLayout) }

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timeLayout)
	return &s
}

type sessionDTO struct {
	ID              int64   `json:"id"`
	Mode            string  `json:"mode"`
	Status          string  `json:"status"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	ElapsedMinutes  float64 `json:"elapsed_minutes"`
	LastResume      *string `json:"last_resume"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func toSessionDTO(s *store.PomodoroSession) sessionDTO {
	return sessionDTO{
		ID:              s.ID,
		Mode:            s.Mode,
		Status:          s.Status,
		StartTime:       formatTime(s.StartTime),
		EndTime:         formatTimePtr(s.EndTime),
		DurationMinutes: s.DurationMinutes,
		ElapsedMinutes:  s.ElapsedMinutes,
		LastResume:      formatTimePtr(s.LastResume),
		CreatedAt:       formatTime(s.CreatedAt),
		UpdatedAt:       formatTime(s.UpdatedAt),
	}
}

type taskDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
	Status      string  `json:"status"`
	DoneAt      *string `json:"done_at"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func toTaskDTO(t *store.Task) taskDTO {
	return taskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		Status:      t.Status,
		DoneAt:      formatTimePtr(t.DoneAt),
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
}

func toTaskDTOs(tasks []store.Task) []taskDTO {
	out := make([]taskDTO, 0, len(tasks))
	for i := range tasks {
		out = append(out, toTaskDTO(&tasks[i]))
	}
	return out
}

type eventDTO struct {
	ID        int64  `json:"id"`
	EventType string `json:"event_type"`
	Details   string `json:"details"`
	CreatedAt string `json:"created_at"`
}

func toEventDTO(e *store.ActivityEvent) eventDTO {
	return eventDTO{
		ID:        e.ID,
		EventType: e.EventType,
		Details:   e.Details,
		CreatedAt: formatTime(e.CreatedAt),
	}
}

func toEventDTOs(events []store.ActivityEvent) []eventDTO {
	out := make([]eventDTO, 0, len(events))
	for i := range events {
		out = append(out, toEventDTO(&events[i]))
	}
	return out
}

type activitySummaryDTO struct {
	WindowHours    int     `json:"window_hours"`
	Since          string  `json:"since"`
	LastActiveAt   *string `json:"last_active_at"`
	LastTypingAt   *string `json:"last_typing_at"`
	LastInactiveAt *string `json:"last_inactive_at"`
	ActiveEvents   int     `json:"active_events"`
	TypingEvents   int     `json:"typing_events"`
	InactiveEvents int     `json:"inactive_events"`
	IsActive       bool    `json:"is_active"`
	IsTyping       bool    `json:"is_typing"`
}

func toActivitySummaryDTO(s *store.ActivitySummary) activitySummaryDTO {
	return activitySummaryDTO{
		WindowHours:    s.WindowHours,
		Since:          formatTime(s.Since),
		LastActiveAt:   formatTimePtr(s.LastActiveAt),
		LastTypingAt:   formatTimePtr(s.LastTypingAt),
		LastInactiveAt: formatTimePtr(s.LastInactiveAt),
		ActiveEvents:   s.ActiveEvents,
		TypingEvents:   s.TypingEvents,
		InactiveEvents: s.InactiveEvents,
		IsActive:       s.IsActive,
		IsTyping:       s.IsTyping,
	}
}

type heatmapDayDTO struct {
	Date     string `json:"date"`
	Active   int    `json:"active"`
	Typing   int    `json:"typing"`
	Inactive int    `json:"inactive"`
}

func toHeatmapDTOs(days []store.HeatmapDay) []heatmapDayDTO {
	out := make([]heatmapDayDTO, 0, len(days))
	for _, d := range days {
		out = append(out, heatmapDayDTO{Date: d.Date, Active: d.Active, Typing: d.Typing, Inactive: d.Inactive})
	}
	return out
}

type timelineBucketDTO struct {
	StartTime string `json:"start_time"`
	Active    int    `json:"active"`
	Typing    int    `json:"typing"`
	Inactive  int    `json:"inactive"`
}

func toTimelineDTOs(buckets []store.TimelineBucket) []timelineBucketDTO {
	out := make([]timelineBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, timelineBucketDTO{StartTime: b.StartTime, Active: b.Active, Typing: b.Typing, Inactive: b.Inactive})
	}
	return out
}

type pomodoroStatsDTO struct {
	Range             string  `json:"range"`
	TotalFocusMinutes float64 `json:"total_focus_minutes"`
	TotalSessions     int     `json:"total_sessions"`
}

func toPomodoroStatsDTO(s *store.PomodoroStats) pomodoroStatsDTO {
	return pomodoroStatsDTO{
		Range:             s.Range,
		TotalFocusMinutes: s.TotalFocusMinutes,
		TotalSessions:     s.TotalSessions,
	}
}

type readmeRecordDTO struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Style     string `json:"style"`
	Path      string `json:"path"`
	CreatedAt string `json:"created_at"`
}

func toReadmeDTOs(records []store.ReadmeRecord) []readmeRecordDTO {
	out := make([]readmeRecordDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, readmeRecordDTO{
			ID:        rec.ID,
			Kind:      rec.Kind,
			Title:     rec.Title,
			Style:     rec.Style,
			Path:      rec.Path,
			CreatedAt: formatTime(rec.CreatedAt),
		})
	}
	return out
}
