package store

import (
	"errors"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for deterministic
// elapsed-minute arithmetic.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)}
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clk := newFakeClock()
	s, err := NewMemoryWithClock(clk)
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, clk
}

// insertStoppedSession inserts a finished focus session ending the
// given number of days before the fake clock's today.
func insertStoppedSession(t *testing.T, s *Store, clk *fakeClock, daysAgo int, elapsed float64) {
	t.Helper()
	end := clk.Now().AddDate(0, 0, -daysAgo)
	start := end.Add(-time.Duration(elapsed) * time.Minute)
	_, err := s.db.Exec(
		`INSERT INTO pomodoro_sessions
		 (mode, status, start_time, end_time, duration_minutes, elapsed_minutes, created_at, updated_at)
		 VALUES ('focus', 'stopped', ?, ?, 25, ?, ?, ?)`,
		start.Format(timeLayout), end.Format(timeLayout), elapsed,
		start.Format(timeLayout), end.Format(timeLayout),
	)
	if err != nil {
		t.Fatalf("insert stopped session: %v", err)
	}
}

// insertEvent appends an activity event at an offset from now.
func insertEvent(t *testing.T, s *Store, clk *fakeClock, eventType string, offset time.Duration) {
	t.Helper()
	ts := clk.Now().Add(offset)
	_, err := s.db.Exec(
		`INSERT INTO activity_events (event_type, details, created_at) VALUES (?, '', ?)`,
		eventType, ts.Format(timeLayout),
	)
	if err != nil {
		t.Fatalf("insert event: %v", err)
	}
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/wyrm.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen should succeed and not re-migrate.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestMigrationIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Session lifecycle
// ============================================================

func TestStartSession(t *testing.T) {
	s, clk := newTestStore(t)

	sess, err := s.StartSession(ModeFocus, 25)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Status != StatusRunning {
		t.Fatalf("expected running, got %s", sess.Status)
	}
	if sess.Mode != ModeFocus || sess.DurationMinutes != 25 {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if sess.ElapsedMinutes != 0 {
		t.Fatalf("expected zero elapsed, got %f", sess.ElapsedMinutes)
	}
	if sess.LastResume == nil || !sess.LastResume.Equal(clk.Now()) {
		t.Fatalf("expected last_resume = now, got %v", sess.LastResume)
	}
}

func TestStartSessionValidation(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.StartSession("nap", 25); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for mode, got %v", err)
	}
	if _, err := s.StartSession(ModeFocus, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duration, got %v", err)
	}
}

func TestStartSessionConflict(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.StartSession(ModeFocus, 25); err != nil {
		t.Fatal(err)
	}
	if _, err := s.StartSession(ModeBreak, 5); !errors.Is(err, ErrSessionActive) {
		t.Fatalf("expected ErrSessionActive, got %v", err)
	}

	// Paused sessions also block a new start.
	if _, err := s.PauseSession(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.StartSession(ModeFocus, 25); !errors.Is(err, ErrSessionActive) {
		t.Fatalf("expected ErrSessionActive while paused, got %v", err)
	}
}

func TestActiveSessionUniqueIndex(t *testing.T) {
	s, clk := newTestStore(t)

	if _, err := s.StartSession(ModeFocus, 25); err != nil {
		t.Fatal(err)
	}

	// Bypass the precondition check; the index must still reject a
	// second active row.
	now := clk.Now().Format(timeLayout)
	_, err := s.db.Exec(
		`INSERT INTO pomodoro_sessions
		 (mode, status, start_time, duration_minutes, elapsed_minutes, last_resume, created_at, updated_at)
		 VALUES ('focus', 'running', ?, 25, 0, ?, ?, ?)`,
		now, now, now, now,
	)
	if err == nil {
		t.Fatal("expected unique index violation")
	}
}

func TestPauseResumeElapsedAccumulates(t *testing.T) {
	s, clk := newTestStore(t)

	if _, err := s.StartSession(ModeFocus, 25); err != nil {
		t.Fatal(err)
	}

	// Two run intervals of 10 and 5 minutes separated by a pause of 30
	// minutes that must not count.
	clk.advance(10 * time.Minute)
	sess, err := s.PauseSession()
	if err != nil {
		t.Fatal(err)
	}
	if sess.Status != StatusPaused || sess.LastResume != nil {
		t.Fatalf("unexpected paused session: %+v", sess)
	}
	if sess.ElapsedMinutes != 10 {
		t.Fatalf("expected 10 elapsed, got %f", sess.ElapsedMinutes)
	}

	clk.advance(30 * time.Minute)
	sess, err = s.ResumeSession()
	if err != nil {
		t.Fatal(err)
	}
	if sess.Status != StatusRunning || sess.LastResume == nil {
		t.Fatalf("unexpected resumed session: %+v", sess)
	}
	if sess.ElapsedMinutes != 10 {
		t.Fatalf("resume must not change elapsed, got %f", sess.ElapsedMinutes)
	}

	clk.advance(5 * time.Minute)
	sess, err = s.StopSession()
	if err != nil {
		t.Fatal(err)
	}
	if sess.Status != StatusStopped {
		t.Fatalf("expected stopped, got %s", sess.Status)
	}
	if sess.ElapsedMinutes != 15 {
		t.Fatalf("expected 15 elapsed (10+5), got %f", sess.ElapsedMinutes)
	}
	if sess.EndTime == nil || !sess.EndTime.Equal(clk.Now()) {
		t.Fatalf("expected end time = now, got %v", sess.EndTime)
	}
	if sess.LastResume != nil {
		t.Fatal("expected last_resume cleared on stop")
	}
}

func TestStopWhilePausedKeepsElapsed(t *testing.T) {
	s, clk := newTestStore(t)

	s.StartSession(ModeFocus, 25)
	clk.advance(7 * time.Minute)
	s.PauseSession()

	// Time spent paused must not leak into elapsed.
	clk.advance(2 * time.Hour)
	sess, err := s.StopSession()
	if err != nil {
		t.Fatal(err)
	}
	if sess.ElapsedMinutes != 7 {
		t.Fatalf("expected 7 elapsed, got %f", sess.ElapsedMinutes)
	}
}

func TestInvalidTransitions(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.PauseSession(); !errors.Is(err, ErrSessionNotRunning) {
		t.Fatalf("pause with no session: %v", err)
	}
	if _, err := s.ResumeSession(); !errors.Is(err, ErrSessionNotPaused) {
		t.Fatalf("resume with no session: %v", err)
	}
	if _, err := s.StopSession(); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("stop with no session: %v", err)
	}

	s.StartSession(ModeFocus, 25)
	if _, err := s.ResumeSession(); !errors.Is(err, ErrSessionNotPaused) {
		t.Fatalf("resume while running: %v", err)
	}
	s.PauseSession()
	if _, err := s.PauseSession(); !errors.Is(err, ErrSessionNotRunning) {
		t.Fatalf("pause while paused: %v", err)
	}
}

func TestStoppedIsTerminal(t *testing.T) {
	s, _ := newTestStore(t)

	s.StartSession(ModeFocus, 25)
	s.StopSession()

	if active, _ := s.ActiveSession(); active != nil {
		t.Fatalf("expected idle after stop, got %+v", active)
	}
	if _, err := s.StopSession(); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("second stop: %v", err)
	}

	// A new start creates an unrelated record.
	sess, err := s.StartSession(ModeFocus, 25)
	if err != nil {
		t.Fatal(err)
	}
	if sess.ElapsedMinutes != 0 {
		t.Fatalf("new session must start fresh, got %f", sess.ElapsedMinutes)
	}
}

func TestActiveSessionIdle(t *testing.T) {
	s, _ := newTestStore(t)
	active, err := s.ActiveSession()
	if err != nil {
		t.Fatal(err)
	}
	if active != nil {
		t.Fatalf("expected nil, got %+v", active)
	}
}

// ============================================================
// Pomodoro stats
// ============================================================

func TestPomodoroStatsRanges(t *testing.T) {
	s, clk := newTestStore(t)

	insertStoppedSession(t, s, clk, 0, 25)  // today
	insertStoppedSession(t, s, clk, 3, 50)  // this week
	insertStoppedSession(t, s, clk, 10, 25) // older

	today, err := s.GetPomodoroStats("today")
	if err != nil {
		t.Fatal(err)
	}
	if today.TotalFocusMinutes != 25 || today.TotalSessions != 1 {
		t.Fatalf("today: %+v", today)
	}

	week, err := s.GetPomodoroStats("week")
	if err != nil {
		t.Fatal(err)
	}
	if week.TotalFocusMinutes != 75 || week.TotalSessions != 2 {
		t.Fatalf("week: %+v", week)
	}

	all, err := s.GetPomodoroStats("all")
	if err != nil {
		t.Fatal(err)
	}
	if all.TotalFocusMinutes != 100 || all.TotalSessions != 3 {
		t.Fatalf("all: %+v", all)
	}
}

func TestPomodoroStatsInvalidRange(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.GetPomodoroStats("month"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPomodoroStatsIgnoresBreaksAndActive(t *testing.T) {
	s, clk := newTestStore(t)

	// Break session, stopped.
	end := clk.Now()
	start := end.Add(-5 * time.Minute)
	s.db.Exec(
		`INSERT INTO pomodoro_sessions (mode, status, start_time, end_time, duration_minutes, elapsed_minutes, created_at, updated_at)
		 VALUES ('break', 'stopped', ?, ?, 5, 5, ?, ?)`,
		start.Format(timeLayout), end.Format(timeLayout), start.Format(timeLayout), end.Format(timeLayout),
	)
	// Focus session, still running.
	s.StartSession(ModeFocus, 25)

	all, err := s.GetPomodoroStats("all")
	if err != nil {
		t.Fatal(err)
	}
	if all.TotalSessions != 0 {
		t.Fatalf("expected no counted sessions, got %+v", all)
	}
}

// ============================================================
// Focus segments and stats
// ============================================================

func TestAddSegmentValidation(t *testing.T) {
	s, clk := newTestStore(t)
	now := clk.Now()

	if _, err := s.AddSegment(now, now, 10, "nap"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for kind, got %v", err)
	}
	if _, err := s.AddSegment(now, now, 0, "work"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for minutes, got %v", err)
	}
}

func TestFocusStats(t *testing.T) {
	s, clk := newTestStore(t)
	now := clk.Now()

	// 25 work minutes today, a break (ignored), and work yesterday and
	// the day before for a 3-day streak.
	s.AddSegment(now.Add(-25*time.Minute), now, 25, "work")
	s.AddSegment(now.Add(-30*time.Minute), now.Add(-25*time.Minute), 5, "break")
	s.AddSegment(now.AddDate(0, 0, -1), now.AddDate(0, 0, -1).Add(30*time.Minute), 30, "work")
	s.AddSegment(now.AddDate(0, 0, -2), now.AddDate(0, 0, -2).Add(15*time.Minute), 15, "work")
	// A gap, then older work that must not extend the streak.
	s.AddSegment(now.AddDate(0, 0, -4), now.AddDate(0, 0, -4).Add(60*time.Minute), 60, "work")

	stats, err := s.GetFocusStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TodayMinutes < 25 || stats.TodaySessions < 1 {
		t.Fatalf("today: %+v", stats)
	}
	if stats.WeekMinutes != 130 || stats.WeekSessions != 4 {
		t.Fatalf("week: %+v", stats)
	}
	if stats.StreakDays != 3 {
		t.Fatalf("expected streak 3, got %d", stats.StreakDays)
	}
}

func TestFocusStatsStreakZeroWithoutToday(t *testing.T) {
	s, clk := newTestStore(t)
	y := clk.Now().AddDate(0, 0, -1)
	s.AddSegment(y, y.Add(30*time.Minute), 30, "work")

	stats, err := s.GetFocusStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.StreakDays != 0 {
		t.Fatalf("expected streak 0, got %d", stats.StreakDays)
	}
}

func TestFocusStatsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	stats, err := s.GetFocusStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TodayMinutes != 0 || stats.WeekSessions != 0 || stats.StreakDays != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestListSegments(t *testing.T) {
	s, clk := newTestStore(t)
	now := clk.Now()
	s.AddSegment(now.Add(-60*time.Minute), now.Add(-35*time.Minute), 25, "work")
	s.AddSegment(now.Add(-25*time.Minute), now, 25, "work")

	segments, err := s.ListSegments(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].StartTS.Before(segments[1].StartTS) {
		t.Fatal("expected most recent first")
	}

	limited, _ := s.ListSegments(1)
	if len(limited) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(limited))
	}
}

// ============================================================
// Tasks
// ============================================================

func strPtr(v string) *string { return &v }

func TestCreateAndGetTask(t *testing.T) {
	s, _ := newTestStore(t)

	task, err := s.CreateTask("Sharpen claws", "before the next hunt", PriorityHigh, strPtr("2024-04-01"))
	if err != nil {
		t.Fatal(err)
	}
	if task.ID == 0 {
		t.Fatal("expected non-zero ID")
	}
	if task.Title != "Sharpen claws" || task.Priority != PriorityHigh || task.Status != TaskTodo {
		t.Fatalf("unexpected task: %+v", task)
	}
	if task.DueDate == nil || *task.DueDate != "2024-04-01" {
		t.Fatalf("unexpected due date: %v", task.DueDate)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.CreateTask("  ", "", "", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty title: %v", err)
	}
	if _, err := s.CreateTask("x", "", "urgent", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad priority: %v", err)
	}
	if _, err := s.CreateTask("x", "", "", strPtr("01/02/2024")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad due date: %v", err)
	}
}

func TestListTasksOrdering(t *testing.T) {
	s, _ := newTestStore(t)

	// Insertion order with dues {null, 2024-01-05, 2024-01-01} must
	// list as [2024-01-01, 2024-01-05, null].
	s.CreateTask("no due", "", "", nil)
	s.CreateTask("later", "", "", strPtr("2024-01-05"))
	s.CreateTask("sooner", "", "", strPtr("2024-01-01"))

	tasks, err := s.ListTasks("all")
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "sooner" || tasks[1].Title != "later" || tasks[2].Title != "no due" {
		t.Fatalf("wrong order: %s, %s, %s", tasks[0].Title, tasks[1].Title, tasks[2].Title)
	}
}

func TestListTasksFilters(t *testing.T) {
	s, _ := newTestStore(t)

	a, _ := s.CreateTask("a", "", "", nil)
	s.CreateTask("b", "", "", nil)
	s.ToggleTask(a.ID)

	open, err := s.ListTasks("open")
	if err != nil {
		t.Fatal(err)
	}
	if len(open) != 1 || open[0].Title != "b" {
		t.Fatalf("open filter: %+v", open)
	}

	done, _ := s.ListTasks(TaskDone)
	if len(done) != 1 || done[0].Title != "a" {
		t.Fatalf("done filter: %+v", done)
	}

	all, _ := s.ListTasks("all")
	if len(all) != 2 {
		t.Fatalf("all filter: %+v", all)
	}

	if _, err := s.ListTasks("bogus"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bogus filter: %v", err)
	}
}

func TestUpdateTaskPartial(t *testing.T) {
	s, clk := newTestStore(t)

	task, _ := s.CreateTask("write docs", "draft", PriorityLow, strPtr("2024-04-01"))
	created := task.UpdatedAt

	clk.advance(time.Minute)
	updated, err := s.UpdateTask(task.ID, TaskPatch{Status: strPtr(TaskDoing)})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != TaskDoing {
		t.Fatalf("expected doing, got %s", updated.Status)
	}
	// Everything else unchanged, updated_at advanced.
	if updated.Title != "write docs" || updated.Description != "draft" || updated.Priority != PriorityLow {
		t.Fatalf("fields changed unexpectedly: %+v", updated)
	}
	if updated.DueDate == nil || *updated.DueDate != "2024-04-01" {
		t.Fatalf("due date changed: %v", updated.DueDate)
	}
	if !updated.UpdatedAt.After(created) {
		t.Fatal("expected updated_at to advance")
	}
}

func TestUpdateTaskClearDueDate(t *testing.T) {
	s, _ := newTestStore(t)

	task, _ := s.CreateTask("x", "", "", strPtr("2024-04-01"))
	updated, err := s.UpdateTask(task.ID, TaskPatch{DueDate: strPtr("")})
	if err != nil {
		t.Fatal(err)
	}
	if updated.DueDate != nil {
		t.Fatalf("expected cleared due date, got %v", updated.DueDate)
	}
}

func TestUpdateTaskDoneSetsDoneAt(t *testing.T) {
	s, _ := newTestStore(t)
	task, _ := s.CreateTask("x", "", "", nil)

	updated, err := s.UpdateTask(task.ID, TaskPatch{Status: strPtr(TaskDone)})
	if err != nil {
		t.Fatal(err)
	}
	if updated.DoneAt == nil {
		t.Fatal("expected done_at set")
	}

	updated, err = s.UpdateTask(task.ID, TaskPatch{Status: strPtr(TaskTodo)})
	if err != nil {
		t.Fatal(err)
	}
	if updated.DoneAt != nil {
		t.Fatal("expected done_at cleared")
	}
}

func TestUpdateTaskErrors(t *testing.T) {
	s, _ := newTestStore(t)
	task, _ := s.CreateTask("x", "", "", nil)

	if _, err := s.UpdateTask(task.ID, TaskPatch{}); !errors.Is(err, ErrNoUpdates) {
		t.Fatalf("empty patch: %v", err)
	}
	if _, err := s.UpdateTask(9999, TaskPatch{Title: strPtr("y")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: %v", err)
	}
	if _, err := s.UpdateTask(task.ID, TaskPatch{Priority: strPtr("urgent")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad priority: %v", err)
	}
	if _, err := s.UpdateTask(task.ID, TaskPatch{Status: strPtr("blocked")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad status: %v", err)
	}
}

func TestToggleTask(t *testing.T) {
	s, _ := newTestStore(t)
	task, _ := s.CreateTask("x", "", "", nil)

	toggled, err := s.ToggleTask(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if toggled.Status != TaskDone || toggled.DoneAt == nil {
		t.Fatalf("expected done: %+v", toggled)
	}

	back, err := s.ToggleTask(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if back.Status != TaskTodo || back.DoneAt != nil {
		t.Fatalf("expected todo: %+v", back)
	}

	if _, err := s.ToggleTask(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: %v", err)
	}
}

func TestCompleteTaskOneWay(t *testing.T) {
	s, _ := newTestStore(t)
	task, _ := s.CreateTask("Sharpen claws", "", "", nil)

	done, err := s.CompleteTask(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if done.Status != TaskDone {
		t.Fatalf("expected done, got %s", done.Status)
	}

	// Gone from the open list, still retrievable among done tasks.
	open, _ := s.ListTasks("open")
	if len(open) != 0 {
		t.Fatalf("expected empty open list, got %+v", open)
	}
	all, _ := s.ListTasks("all")
	if len(all) != 1 {
		t.Fatalf("expected task retained, got %+v", all)
	}

	// Already done and absent ids both fail the same way.
	if _, err := s.CompleteTask(task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("already done: %v", err)
	}
	if _, err := s.CompleteTask(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	s, _ := newTestStore(t)
	task, _ := s.CreateTask("x", "", "", nil)

	if err := s.DeleteTask(task.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetTask(task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.DeleteTask(task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}

// ============================================================
// Activity events
// ============================================================

func TestRecordEvent(t *testing.T) {
	s, _ := newTestStore(t)

	e, err := s.RecordEvent(EventTyping, "main.go")
	if err != nil {
		t.Fatal(err)
	}
	if e.ID == 0 || e.EventType != EventTyping || e.Details != "main.go" {
		t.Fatalf("unexpected event: %+v", e)
	}

	if _, err := s.RecordEvent("sleeping", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad type: %v", err)
	}
}

func TestActivitySummary(t *testing.T) {
	s, clk := newTestStore(t)

	insertEvent(t, s, clk, EventActive, -10*time.Minute)
	insertEvent(t, s, clk, EventTyping, -5*time.Minute)
	insertEvent(t, s, clk, EventTyping, -2*time.Hour) // outside 1h window
	insertEvent(t, s, clk, EventInactive, -30*time.Minute)

	sum, err := s.GetActivitySummary(1)
	if err != nil {
		t.Fatal(err)
	}
	if sum.ActiveEvents != 1 || sum.TypingEvents != 1 || sum.InactiveEvents != 1 {
		t.Fatalf("counts: %+v", sum)
	}
	if !sum.IsActive || !sum.IsTyping {
		t.Fatalf("expected active+typing flags: %+v", sum)
	}
	if sum.LastTypingAt == nil || !sum.LastTypingAt.Equal(clk.Now().Add(-5*time.Minute)) {
		t.Fatalf("last typing: %v", sum.LastTypingAt)
	}
}

func TestActivitySummaryStaleFlags(t *testing.T) {
	s, clk := newTestStore(t)
	insertEvent(t, s, clk, EventActive, -3*time.Hour)

	sum, err := s.GetActivitySummary(1)
	if err != nil {
		t.Fatal(err)
	}
	if sum.IsActive {
		t.Fatal("expected stale active flag false")
	}
	if sum.LastActiveAt == nil {
		t.Fatal("latest timestamp should still be reported")
	}
}

func TestHeatmapZeroFilled(t *testing.T) {
	s, clk := newTestStore(t)

	days, err := s.GetHeatmap(7)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(days))
	}
	// Contiguous, ending today.
	for i, d := range days {
		want := clk.Now().AddDate(0, 0, i-6).Format("2006-01-02")
		if d.Date != want {
			t.Fatalf("entry %d: expected %s, got %s", i, want, d.Date)
		}
		if d.Active != 0 || d.Typing != 0 || d.Inactive != 0 {
			t.Fatalf("expected zero counts: %+v", d)
		}
	}
}

func TestHeatmapCountsAndClamp(t *testing.T) {
	s, clk := newTestStore(t)

	insertEvent(t, s, clk, EventActive, -time.Hour)
	insertEvent(t, s, clk, EventActive, -2*time.Hour)
	insertEvent(t, s, clk, EventTyping, -25*time.Hour)

	days, err := s.GetHeatmap(3) // clamps to 7
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 7 {
		t.Fatalf("expected clamp to 7, got %d", len(days))
	}
	last := days[6]
	if last.Active != 2 {
		t.Fatalf("expected 2 active today, got %+v", last)
	}
	if days[5].Typing != 1 {
		t.Fatalf("expected 1 typing yesterday, got %+v", days[5])
	}
}

func TestTimelineBuckets(t *testing.T) {
	s, clk := newTestStore(t)
	date := clk.Now().Format("2006-01-02")

	// 09:00 local with a 10-minute bucket lands in bucket 54.
	insertEvent(t, s, clk, EventTyping, 0)

	buckets, err := s.GetTimeline(date, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(buckets) != 144 {
		t.Fatalf("expected 144 buckets, got %d", len(buckets))
	}
	if buckets[0].StartTime != "00:00" || buckets[143].StartTime != "23:50" {
		t.Fatalf("bucket labels: %s ... %s", buckets[0].StartTime, buckets[143].StartTime)
	}
	if buckets[54].Typing != 1 {
		t.Fatalf("expected typing count in bucket 54, got %+v", buckets[54])
	}
}

func TestTimelineValidation(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.GetTimeline("03-01-2024", 10); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad date: %v", err)
	}
	if _, err := s.GetTimeline("2024-03-01", 4); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bucket too small: %v", err)
	}
	if _, err := s.GetTimeline("2024-03-01", 61); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bucket too large: %v", err)
	}
}

// ============================================================
// README history and settings
// ============================================================

func TestReadmeHistory(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.AddReadmeRecord("profile", "sadopc", "clean", "/tmp/README.md"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddReadmeRecord("project", "wyrm", "cute", "/tmp/PROJECT.md"); err != nil {
		t.Fatal(err)
	}

	records, err := s.ListReadmeHistory(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Kind != "project" {
		t.Fatalf("expected most recent first, got %+v", records[0])
	}
}

func TestSettings(t *testing.T) {
	s, _ := newTestStore(t)

	v, err := s.GetSetting("focus_minutes")
	if err != nil {
		t.Fatal(err)
	}
	if v != "25" {
		t.Fatalf("expected default 25, got %s", v)
	}

	if err := s.SetSetting("focus_minutes", "50"); err != nil {
		t.Fatal(err)
	}
	if n := s.GetSettingInt("focus_minutes", 25); n != 50 {
		t.Fatalf("expected 50, got %d", n)
	}
	if n := s.GetSettingInt("missing", 7); n != 7 {
		t.Fatalf("expected fallback 7, got %d", n)
	}

	settings, err := s.GetAllSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(settings) < 5 {
		t.Fatalf("expected seeded settings, got %d", len(settings))
	}
}
