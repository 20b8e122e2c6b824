package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/wyrm/internal/store"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	Segments   []jsonSegment `json:"segments"`
	Tasks      []jsonTask    `json:"tasks"`
}

type jsonSegment struct {
	ID      int64  `json:"id"`
	Kind    string `json:"kind"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Minutes int    `json:"minutes"`
}

type jsonTask struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	DueDate  string `json:"due_date,omitempty"`
	DoneAt   string `json:"done_at,omitempty"`
	Created  string `json:"created_at"`
}

// ToJSON writes segments and tasks to a single JSON file.
func ToJSON(segments []store.FocusSegment, tasks []store.Task, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().Format(timeLayout),
		Segments:   []jsonSegment{},
		Tasks:      []jsonTask{},
	}

	for _, seg := range segments {
		out.Segments = append(out.Segments, jsonSegment{
			ID:      seg.ID,
			Kind:    seg.Kind,
			Start:   seg.StartTS.Format(timeLayout),
			End:     seg.EndTS.Format(timeLayout),
			Minutes: seg.Minutes,
		})
	}

	for _, t := range tasks {
		jt := jsonTask{
			ID:       t.ID,
			Title:    t.Title,
			Priority: t.Priority,
			Status:   t.Status,
			Created:  t.CreatedAt.Format(timeLayout),
		}
		if t.DueDate != nil {
			jt.DueDate = *t.DueDate
		}
		if t.DoneAt != nil {
			jt.DoneAt = t.DoneAt.Format(timeLayout)
		}
		out.Tasks = append(out.Tasks, jt)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
