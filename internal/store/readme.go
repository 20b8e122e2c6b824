package store

import "fmt"

// AddReadmeRecord logs one generated README.
func (s *Store) AddReadmeRecord(kind, title, style, path string) (*ReadmeRecord, error) {
	now := s.now()
	res, err := s.db.Exec(
		`INSERT INTO readme_history (kind, title, style, path, created_at) VALUES (?, ?, ?, ?, ?)`,
		kind, title, style, path, now.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("insert readme record: %w", err)
	}
	id, _ := res.LastInsertId()
	return &ReadmeRecord{ID: id, Kind: kind, Title: title, Style: style, Path: path, CreatedAt: now}, nil
}

// ListReadmeHistory returns generated READMEs most recent first.
func (s *Store) ListReadmeHistory(limit int) ([]ReadmeRecord, error) {
	query := `SELECT id, kind, title, style, path, created_at FROM readme_history ORDER BY id DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list readme history: %w", err)
	}
	defer rows.Close()

	var records []ReadmeRecord
	for rows.Next() {
		var r ReadmeRecord
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Kind, &r.Title, &r.Style, &r.Path, &createdAt); err != nil {
			return nil, err
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}
	return records, rows.Err()
}
