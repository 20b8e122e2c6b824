package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

func validPriority(p string) bool {
	return p == PriorityLow || p == PriorityMed || p == PriorityHigh
}

func validTaskStatus(s string) bool {
	return s == TaskTodo || s == TaskDoing || s == TaskDone
}

func validDueDate(d string) bool {
	_, err := time.ParseInLocation(dateLayout, d, time.Local)
	return err == nil
}

// CreateTask inserts a task with status todo. dueDate may be nil.
func (s *Store) CreateTask(title, description, priority string, dueDate *string) (*Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if priority == "" {
		priority = PriorityMed
	}
	if !validPriority(priority) {
		return nil, fmt.Errorf("%w: priority must be low, med or high", ErrInvalidInput)
	}
	if dueDate != nil && !validDueDate(*dueDate) {
		return nil, fmt.Errorf("%w: due date must be %s", ErrInvalidInput, dateLayout)
	}

	now := s.nowString()
	res, err := s.db.Exec(
		`INSERT INTO tasks (title, description, priority, due_date, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 'todo', ?, ?)`,
		title, description, priority, dueDate, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetTask(id)
}

func (s *Store) GetTask(id int64) (*Task, error) {
	row := s.db.QueryRow(
		`SELECT id, title, description, priority, due_date, status, done_at, created_at, updated_at
		 FROM tasks WHERE id = ?`, id,
	)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	return t, nil
}

// ListTasks returns tasks for a status filter: all, todo, doing, done,
// or open (anything not done). Tasks without a due date sort last, then
// due date ascending, then creation time.
func (s *Store) ListTasks(filter string) ([]Task, error) {
	query := `SELECT id, title, description, priority, due_date, status, done_at, created_at, updated_at FROM tasks`
	var args []any

	switch filter {
	case "", "all":
	case "open":
		query += ` WHERE status != 'done'`
	case TaskTodo, TaskDoing, TaskDone:
		query += ` WHERE status = ?`
		args = append(args, filter)
	default:
		return nil, fmt.Errorf("%w: filter must be all, open, todo, doing or done", ErrInvalidInput)
	}
	query += ` ORDER BY due_date IS NULL, due_date, created_at`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// UpdateTask overwrites only the fields present in patch. All-nil
// patches fail with ErrNoUpdates; updated_at is always refreshed.
func (s *Store) UpdateTask(id int64, patch TaskPatch) (*Task, error) {
	var sets []string
	var args []any

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
		}
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Priority != nil {
		if !validPriority(*patch.Priority) {
			return nil, fmt.Errorf("%w: priority must be low, med or high", ErrInvalidInput)
		}
		sets = append(sets, "priority = ?")
		args = append(args, *patch.Priority)
	}
	if patch.DueDate != nil {
		if *patch.DueDate == "" {
			sets = append(sets, "due_date = NULL")
		} else {
			if !validDueDate(*patch.DueDate) {
				return nil, fmt.Errorf("%w: due date must be %s", ErrInvalidInput, dateLayout)
			}
			sets = append(sets, "due_date = ?")
			args = append(args, *patch.DueDate)
		}
	}
	if patch.Status != nil {
		if !validTaskStatus(*patch.Status) {
			return nil, fmt.Errorf("%w: status must be todo, doing or done", ErrInvalidInput)
		}
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
		if *patch.Status == TaskDone {
			sets = append(sets, "done_at = ?")
			args = append(args, s.nowString())
		} else {
			sets = append(sets, "done_at = NULL")
		}
	}
	if len(sets) == 0 {
		return nil, ErrNoUpdates
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, s.nowString(), id)

	res, err := s.db.Exec(
		fmt.Sprintf(`UPDATE tasks SET %s WHERE id = ?`, strings.Join(sets, ", ")),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.GetTask(id)
}

// ToggleTask flips a task between done and todo.
func (s *Store) ToggleTask(id int64) (*Task, error) {
	t, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}

	now := s.nowString()
	if t.Status == TaskDone {
		_, err = s.db.Exec(
			`UPDATE tasks SET status = 'todo', done_at = NULL, updated_at = ? WHERE id = ?`,
			now, id,
		)
	} else {
		_, err = s.db.Exec(
			`UPDATE tasks SET status = 'done', done_at = ?, updated_at = ? WHERE id = ?`,
			now, now, id,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}
	return s.GetTask(id)
}

// CompleteTask marks a not-done task done. One-directional: absent ids
// and already-done tasks both fail with ErrNotFound.
func (s *Store) CompleteTask(id int64) (*Task, error) {
	now := s.nowString()
	res, err := s.db.Exec(
		`UPDATE tasks SET status = 'done', done_at = ?, updated_at = ? WHERE id = ? AND status != 'done'`,
		now, now, id,
	)
	if err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.GetTask(id)
}

func (s *Store) DeleteTask(id int64) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTask(row rowScanner) (*Task, error) {
	t := &Task{}
	var createdAt, updatedAt string
	var dueDate, doneAt sql.NullString

	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &dueDate,
		&t.Status, &doneAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if dueDate.Valid {
		d := dueDate.String
		t.DueDate = &d
	}
	if doneAt.Valid {
		ts := parseTime(doneAt.String)
		t.DoneAt = &ts
	}
	t.CreatedAt = parseTime(createdAt)
	t.UpdatedAt = parseTime(updatedAt)
	return t, nil
}
