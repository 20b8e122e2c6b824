package store

import (
	"database/sql"
	"fmt"
	"time"
)

func validEventType(t string) bool {
	return t == EventActive || t == EventInactive || t == EventTyping
}

// RecordEvent appends one activity tick. Events are never mutated.
func (s *Store) RecordEvent(eventType, details string) (*ActivityEvent, error) {
	if !validEventType(eventType) {
		return nil, fmt.Errorf("%w: event type must be active, inactive or typing", ErrInvalidInput)
	}

	now := s.now()
	res, err := s.db.Exec(
		`INSERT INTO activity_events (event_type, details, created_at) VALUES (?, ?, ?)`,
		eventType, details, now.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	id, _ := res.LastInsertId()
	return &ActivityEvent{ID: id, EventType: eventType, Details: details, CreatedAt: now}, nil
}

// ListEvents returns events within the trailing window, newest first.
func (s *Store) ListEvents(windowHours, limit int) ([]ActivityEvent, error) {
	since := s.now().Add(-time.Duration(windowHours) * time.Hour)
	rows, err := s.db.Query(
		`SELECT id, event_type, details, created_at
		 FROM activity_events
		 WHERE created_at >= ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		since.Format(timeLayout), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []ActivityEvent
	for rows.Next() {
		var e ActivityEvent
		var createdAt string
		if err := rows.Scan(&e.ID, &e.EventType, &e.Details, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt = parseTime(createdAt)
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetActivitySummary reports latest timestamps and counts per event
// type within the trailing window, plus "right now" flags.
func (s *Store) GetActivitySummary(windowHours int) (*ActivitySummary, error) {
	if windowHours < 1 {
		return nil, fmt.Errorf("%w: window hours must be positive", ErrInvalidInput)
	}

	now := s.now()
	since := now.Add(-time.Duration(windowHours) * time.Hour)
	sum := &ActivitySummary{WindowHours: windowHours, Since: since}

	latest := func(eventType string) (*time.Time, error) {
		var v string
		err := s.db.QueryRow(
			`SELECT created_at FROM activity_events WHERE event_type = ? ORDER BY created_at DESC LIMIT 1`,
			eventType,
		).Scan(&v)
		if err == sql.ErrNoRows {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		t := parseTime(v)
		return &t, nil
	}
	count := func(eventType string) (int, error) {
		var n int
		err := s.db.QueryRow(
			`SELECT COUNT(*) FROM activity_events WHERE event_type = ? AND created_at >= ?`,
			eventType, since.Format(timeLayout),
		).Scan(&n)
		return n, err
	}

	var err error
	if sum.LastActiveAt, err = latest(EventActive); err != nil {
		return nil, fmt.Errorf("activity summary: %w", err)
	}
	if sum.LastTypingAt, err = latest(EventTyping); err != nil {
		return nil, fmt.Errorf("activity summary: %w", err)
	}
	if sum.LastInactiveAt, err = latest(EventInactive); err != nil {
		return nil, fmt.Errorf("activity summary: %w", err)
	}
	if sum.ActiveEvents, err = count(EventActive); err != nil {
		return nil, fmt.Errorf("activity summary: %w", err)
	}
	if sum.TypingEvents, err = count(EventTyping); err != nil {
		return nil, fmt.Errorf("activity summary: %w", err)
	}
	if sum.InactiveEvents, err = count(EventInactive); err != nil {
		return nil, fmt.Errorf("activity summary: %w", err)
	}

	within := func(t *time.Time) bool {
		return t != nil && !t.Before(since)
	}
	sum.IsActive = within(sum.LastActiveAt)
	sum.IsTyping = within(sum.LastTypingAt)
	return sum, nil
}

// GetHeatmap returns one entry per calendar day in the trailing window,
// oldest first, zero-filled. days is clamped to [7, 365].
func (s *Store) GetHeatmap(days int) ([]HeatmapDay, error) {
	if days < 7 {
		days = 7
	}
	if days > 365 {
		days = 365
	}

	today := s.now()
	start := today.AddDate(0, 0, -(days - 1))

	rows, err := s.db.Query(
		`SELECT date(created_at), event_type, COUNT(*)
		 FROM activity_events
		 WHERE date(created_at) >= ?
		 GROUP BY 1, 2
		 ORDER BY 1`,
		start.Format(dateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("heatmap: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]map[string]int)
	for rows.Next() {
		var day, eventType string
		var n int
		if err := rows.Scan(&day, &eventType, &n); err != nil {
			return nil, err
		}
		if counts[day] == nil {
			counts[day] = make(map[string]int)
		}
		counts[day][eventType] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items := make([]HeatmapDay, 0, days)
	for i := 0; i < days; i++ {
		key := start.AddDate(0, 0, i).Format(dateLayout)
		c := counts[key]
		items = append(items, HeatmapDay{
			Date:     key,
			Active:   c[EventActive],
			Typing:   c[EventTyping],
			Inactive: c[EventInactive],
		})
	}
	return items, nil
}

// GetTimeline partitions a single date into fixed-size buckets by
// minute of day, zero-filled. bucketMinutes must be within [5, 60].
func (s *Store) GetTimeline(dateStr string, bucketMinutes int) ([]TimelineBucket, error) {
	target, err := time.ParseInLocation(dateLayout, dateStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be %s", ErrInvalidInput, dateLayout)
	}
	if bucketMinutes < 5 || bucketMinutes > 60 {
		return nil, fmt.Errorf("%w: bucket minutes must be between 5 and 60", ErrInvalidInput)
	}

	perDay := 24 * 60 / bucketMinutes
	buckets := make([]TimelineBucket, perDay)
	for i := range buckets {
		minutes := i * bucketMinutes
		buckets[i].StartTime = fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
	}

	rows, err := s.db.Query(
		`SELECT created_at, event_type FROM activity_events WHERE date(created_at) = ?`,
		target.Format(dateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var createdAt, eventType string
		if err := rows.Scan(&createdAt, &eventType); err != nil {
			return nil, err
		}
		ts := parseTime(createdAt)
		idx := (ts.Hour()*60 + ts.Minute()) / bucketMinutes
		if idx < 0 || idx >= perDay {
			continue
		}
		switch eventType {
		case EventActive:
			buckets[idx].Active++
		case EventTyping:
			buckets[idx].Typing++
		case EventInactive:
			buckets[idx].Inactive++
		}
	}
	return buckets, rows.Err()
}
