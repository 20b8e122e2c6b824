package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sadopc/wyrm/internal/clock"
)

const currentVersion = 1

// Timestamps are stored as local time, second precision. Due dates are
// bare calendar dates.
const (
	timeLayout = "2006-01-02 15:04:05"
	dateLayout = "2006-01-02"
)

type Store struct {
	db    *sql.DB
	clock clock.Clock
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	return NewWithClock(dbPath, clock.System{})
}

// NewWithClock is New with an injected clock; used by tests and anything
// that needs deterministic session arithmetic.
func NewWithClock(dbPath string, clk clock.Clock) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, clock: clk}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

// NewMemoryWithClock creates an in-memory store with a fake clock for
// lifecycle tests.
func NewMemoryWithClock(clk clock.Clock) (*Store, error) {
	return NewWithClock(":memory:", clk)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) now() time.Time {
	return s.clock.Now()
}

func (s *Store) nowString() string {
	return s.clock.Now().Format(timeLayout)
}

func parseTime(v string) time.Time {
	t, _ := time.ParseInLocation(timeLayout, v, time.Local)
	return t
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS pomodoro_sessions (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		mode             TEXT NOT NULL DEFAULT 'focus',
		status           TEXT NOT NULL DEFAULT 'running',
		start_time       TEXT NOT NULL,
		end_time         TEXT,
		duration_minutes INTEGER NOT NULL DEFAULT 25,
		elapsed_minutes  REAL NOT NULL DEFAULT 0,
		last_resume      TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	);

	-- At most one running-or-paused row, enforced by the engine rather
	-- than only by the read-then-write check.
	CREATE UNIQUE INDEX IF NOT EXISTS idx_pomodoro_active
		ON pomodoro_sessions (status IN ('running','paused'))
		WHERE status IN ('running','paused');

	CREATE TABLE IF NOT EXISTS focus_segments (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		start_ts TEXT NOT NULL,
		end_ts   TEXT NOT NULL,
		minutes  INTEGER NOT NULL,
		kind     TEXT NOT NULL DEFAULT 'work'
	);

	CREATE INDEX IF NOT EXISTS idx_segments_start ON focus_segments(start_ts);

	CREATE TABLE IF NOT EXISTS tasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		priority    TEXT NOT NULL DEFAULT 'med',
		due_date    TEXT,
		status      TEXT NOT NULL DEFAULT 'todo',
		done_at     TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
	CREATE INDEX IF NOT EXISTS idx_tasks_due    ON tasks(due_date);

	CREATE TABLE IF NOT EXISTS activity_events (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		event_type TEXT NOT NULL,
		details    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_activity_created ON activity_events(created_at);

	CREATE TABLE IF NOT EXISTS readme_history (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		kind       TEXT NOT NULL,
		title      TEXT NOT NULL,
		style      TEXT NOT NULL,
		path       TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	INSERT OR IGNORE INTO settings (key, value) VALUES
		('focus_minutes',         '25'),
		('break_minutes',         '5'),
		('cycles',                '4'),
		('daily_goal_minutes',    '240'),
		('readme_style',          'clean'),
		('activity_window_hours', '1');
	`
	_, err := s.db.Exec(ddl)
	return err
}
