package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// StartSession creates a new running session. It fails with
// ErrSessionActive while another session is running or paused.
func (s *Store) StartSession(mode string, durationMinutes int) (*PomodoroSession, error) {
	if mode != ModeFocus && mode != ModeBreak {
		return nil, fmt.Errorf("%w: mode must be focus or break", ErrInvalidInput)
	}
	if durationMinutes < 1 {
		return nil, fmt.Errorf("%w: duration must be at least one minute", ErrInvalidInput)
	}

	active, err := s.ActiveSession()
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrSessionActive
	}

	now := s.nowString()
	res, err := s.db.Exec(
		`INSERT INTO pomodoro_sessions
		 (mode, status, start_time, end_time, duration_minutes, elapsed_minutes, last_resume, created_at, updated_at)
		 VALUES (?, 'running', ?, NULL, ?, 0, ?, ?, ?)`,
		mode, now, durationMinutes, now, now, now,
	)
	if err != nil {
		// The partial unique index closes the race between two
		// concurrent starts that both pass the check above.
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, ErrSessionActive
		}
		return nil, fmt.Errorf("start session: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetSession(id)
}

// PauseSession folds the current running interval into elapsed_minutes
// and parks the session.
func (s *Store) PauseSession() (*PomodoroSession, error) {
	active, err := s.ActiveSession()
	if err != nil {
		return nil, err
	}
	if active == nil || active.Status != StatusRunning {
		return nil, ErrSessionNotRunning
	}

	now := s.now()
	elapsed := active.ElapsedMinutes
	if active.LastResume != nil {
		elapsed += now.Sub(*active.LastResume).Minutes()
	}

	_, err = s.db.Exec(
		`UPDATE pomodoro_sessions
		 SET status = 'paused', elapsed_minutes = ?, last_resume = NULL, updated_at = ?
		 WHERE id = ?`,
		elapsed, now.Format(timeLayout), active.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("pause session: %w", err)
	}
	return s.GetSession(active.ID)
}

// ResumeSession restarts a paused session's running interval.
func (s *Store) ResumeSession() (*PomodoroSession, error) {
	active, err := s.ActiveSession()
	if err != nil {
		return nil, err
	}
	if active == nil || active.Status != StatusPaused {
		return nil, ErrSessionNotPaused
	}

	now := s.nowString()
	_, err = s.db.Exec(
		`UPDATE pomodoro_sessions
		 SET status = 'running', last_resume = ?, updated_at = ?
		 WHERE id = ?`,
		now, now, active.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("resume session: %w", err)
	}
	return s.GetSession(active.ID)
}

// StopSession finalizes the active session. Stopped is terminal; a new
// StartSession creates an unrelated record.
func (s *Store) StopSession() (*PomodoroSession, error) {
	active, err := s.ActiveSession()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, ErrNoActiveSession
	}

	now := s.now()
	elapsed := active.ElapsedMinutes
	if active.Status == StatusRunning && active.LastResume != nil {
		elapsed += now.Sub(*active.LastResume).Minutes()
	}

	_, err = s.db.Exec(
		`UPDATE pomodoro_sessions
		 SET status = 'stopped', end_time = ?, elapsed_minutes = ?, last_resume = NULL, updated_at = ?
		 WHERE id = ?`,
		now.Format(timeLayout), elapsed, now.Format(timeLayout), active.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("stop session: %w", err)
	}
	return s.GetSession(active.ID)
}

// ActiveSession returns the most recent running-or-paused session, or
// nil when idle.
func (s *Store) ActiveSession() (*PomodoroSession, error) {
	row := s.db.QueryRow(
		`SELECT id, mode, status, start_time, end_time, duration_minutes, elapsed_minutes, last_resume, created_at, updated_at
		 FROM pomodoro_sessions
		 WHERE status IN ('running','paused')
		 ORDER BY id DESC LIMIT 1`,
	)
	sess, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active session: %w", err)
	}
	return sess, nil
}

func (s *Store) GetSession(id int64) (*PomodoroSession, error) {
	row := s.db.QueryRow(
		`SELECT id, mode, status, start_time, end_time, duration_minutes, elapsed_minutes, last_resume, created_at, updated_at
		 FROM pomodoro_sessions WHERE id = ?`, id,
	)
	sess, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session %d: %w", id, err)
	}
	return sess, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*PomodoroSession, error) {
	p := &PomodoroSession{}
	var startTime, createdAt, updatedAt string
	var endTime, lastResume sql.NullString

	err := row.Scan(&p.ID, &p.Mode, &p.Status, &startTime, &endTime,
		&p.DurationMinutes, &p.ElapsedMinutes, &lastResume, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	p.StartTime = parseTime(startTime)
	if endTime.Valid {
		t := parseTime(endTime.String)
		p.EndTime = &t
	}
	if lastResume.Valid {
		t := parseTime(lastResume.String)
		p.LastResume = &t
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}

// GetPomodoroStats sums elapsed minutes over stopped focus-mode
// sessions whose end date falls in rng: today, week (trailing 7 days
// inclusive), or all.
func (s *Store) GetPomodoroStats(rng string) (*PomodoroStats, error) {
	today := s.now()
	var where string
	var args []any

	switch rng {
	case "today":
		where = "AND date(end_time) = ?"
		args = append(args, today.Format(dateLayout))
	case "week":
		where = "AND date(end_time) >= ?"
		args = append(args, today.AddDate(0, 0, -6).Format(dateLayout))
	case "all":
	default:
		return nil, fmt.Errorf("%w: range must be today, week or all", ErrInvalidInput)
	}

	stats := &PomodoroStats{Range: rng}
	err := s.db.QueryRow(fmt.Sprintf(`
		SELECT COALESCE(SUM(elapsed_minutes), 0), COUNT(*)
		FROM pomodoro_sessions
		WHERE mode = 'focus'
		  AND status = 'stopped'
		  AND end_time IS NOT NULL
		  %s`, where), args...,
	).Scan(&stats.TotalFocusMinutes, &stats.TotalSessions)
	if err != nil {
		return nil, fmt.Errorf("pomodoro stats: %w", err)
	}
	return stats, nil
}
