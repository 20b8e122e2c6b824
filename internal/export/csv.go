package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sadopc/wyrm/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

// SegmentsToCSV writes completed focus segments to a CSV file.
func SegmentsToCSV(segments []store.FocusSegment, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Kind", "Start", "End", "Minutes"}); err != nil {
		return err
	}

	for _, seg := range segments {
		row := []string{
			fmt.Sprintf("%d", seg.ID),
			seg.Kind,
			seg.StartTS.Format(timeLayout),
			seg.EndTS.Format(timeLayout),
			fmt.Sprintf("%d", seg.Minutes),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// TasksToCSV writes tasks to a CSV file.
func TasksToCSV(tasks []store.Task, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Title", "Priority", "Status", "Due", "Done At", "Created"}); err != nil {
		return err
	}

	for _, t := range tasks {
		due := ""
		if t.DueDate != nil {
			due = *t.DueDate
		}
		doneAt := ""
		if t.DoneAt != nil {
			doneAt = t.DoneAt.Format(timeLayout)
		}
		row := []string{
			fmt.Sprintf("%d", t.ID),
			t.Title,
			t.Priority,
			t.Status,
			due,
			doneAt,
			t.CreatedAt.Format(timeLayout),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
