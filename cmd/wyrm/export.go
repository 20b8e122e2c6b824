package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/wyrm/internal/export"
)

func exportCmd() *cobra.Command {
	var format, what, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export focus segments and tasks to CSV or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "csv" && format != "json" {
				return fmt.Errorf("unknown format %q: use csv or json", format)
			}
			if what != "segments" && what != "tasks" {
				return fmt.Errorf("unknown target %q: use segments or tasks", what)
			}

			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			segments, err := s.ListSegments(0)
			if err != nil {
				return err
			}
			tasks, err := s.ListTasks("all")
			if err != nil {
				return err
			}

			if out == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				out = filepath.Join(home,
					fmt.Sprintf("wyrm-export-%s.%s", time.Now().Format("2006-01-02"), format))
			}

			// JSON always carries both collections; --what picks the
			// CSV table.
			switch {
			case format == "json":
				err = export.ToJSON(segments, tasks, out)
			case what == "tasks":
				err = export.TasksToCSV(tasks, out)
			default:
				err = export.SegmentsToCSV(segments, out)
			}
			if err != nil {
				return err
			}

			fmt.Printf("exported to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "csv or json")
	cmd.Flags().StringVarP(&what, "what", "w", "segments", "csv table: segments or tasks")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path")

	return cmd
}
