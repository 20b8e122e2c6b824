package store

import (
	"fmt"
	"time"
)

// AddSegment records one completed work or break interval.
func (s *Store) AddSegment(start, end time.Time, minutes int, kind string) (*FocusSegment, error) {
	if kind != "work" && kind != "break" {
		return nil, fmt.Errorf("%w: kind must be work or break", ErrInvalidInput)
	}
	if minutes < 1 {
		return nil, fmt.Errorf("%w: minutes must be positive", ErrInvalidInput)
	}

	res, err := s.db.Exec(
		`INSERT INTO focus_segments (start_ts, end_ts, minutes, kind) VALUES (?, ?, ?, ?)`,
		start.Format(timeLayout), end.Format(timeLayout), minutes, kind,
	)
	if err != nil {
		return nil, fmt.Errorf("insert segment: %w", err)
	}
	id, _ := res.LastInsertId()
	return &FocusSegment{ID: id, StartTS: start, EndTS: end, Minutes: minutes, Kind: kind}, nil
}

// ListSegments returns segments most recent first. limit <= 0 means all.
func (s *Store) ListSegments(limit int) ([]FocusSegment, error) {
	query := `SELECT id, start_ts, end_ts, minutes, kind FROM focus_segments ORDER BY start_ts DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list segments: %w", err)
	}
	defer rows.Close()

	var segments []FocusSegment
	for rows.Next() {
		var seg FocusSegment
		var startTS, endTS string
		if err := rows.Scan(&seg.ID, &startTS, &endTS, &seg.Minutes, &seg.Kind); err != nil {
			return nil, err
		}
		seg.StartTS = parseTime(startTS)
		seg.EndTS = parseTime(endTS)
		segments = append(segments, seg)
	}
	return segments, rows.Err()
}

// GetFocusStats aggregates work segments: today's and the trailing
// week's totals plus the consecutive-day streak ending today.
func (s *Store) GetFocusStats() (*FocusStats, error) {
	today := s.now()
	todayStr := today.Format(dateLayout)
	weekStart := today.AddDate(0, 0, -6).Format(dateLayout)

	stats := &FocusStats{}
	err := s.db.QueryRow(`
		SELECT COALESCE(SUM(minutes), 0), COUNT(*)
		FROM focus_segments
		WHERE kind = 'work' AND date(start_ts) = ?`, todayStr,
	).Scan(&stats.TodayMinutes, &stats.TodaySessions)
	if err != nil {
		return nil, fmt.Errorf("today focus stats: %w", err)
	}

	err = s.db.QueryRow(`
		SELECT COALESCE(SUM(minutes), 0), COUNT(*)
		FROM focus_segments
		WHERE kind = 'work' AND date(start_ts) >= ?`, weekStart,
	).Scan(&stats.WeekMinutes, &stats.WeekSessions)
	if err != nil {
		return nil, fmt.Errorf("week focus stats: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT DISTINCT date(start_ts)
		FROM focus_segments
		WHERE kind = 'work'
		ORDER BY 1 DESC`)
	if err != nil {
		return nil, fmt.Errorf("focus streak dates: %w", err)
	}
	defer rows.Close()

	dates := make(map[string]bool)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates[d] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Walk backward from today while each day has at least one work
	// segment. Streak is zero if today has none.
	cursor := today
	for dates[cursor.Format(dateLayout)] {
		stats.StreakDays++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return stats, nil
}
