package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sadopc/wyrm/internal/store"
)

func tasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage the task list",
	}

	cmd.AddCommand(tasksAddCmd())
	cmd.AddCommand(tasksListCmd())
	cmd.AddCommand(tasksDoneCmd())

	return cmd
}

func tasksAddCmd() *cobra.Command {
	var description, priority, due string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			var duePtr *string
			if due != "" {
				duePtr = &due
			}
			task, err := s.CreateTask(args[0], description, priority, duePtr)
			if err != nil {
				return err
			}
			fmt.Printf("created #%d %s\n", task.ID, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "d", "", "task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", store.PriorityMed, "low, med or high")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")

	return cmd
}

func tasksListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			tasks, err := s.ListTasks(status)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("no tasks")
				return nil
			}

			for _, t := range tasks {
				due := ""
				if t.DueDate != nil {
					due = "  due " + *t.DueDate
				}
				mark := " "
				if t.Status == store.TaskDone {
					mark = "x"
				}
				fmt.Printf("[%s] #%-4d %-6s %s%s\n", mark, t.ID, t.Priority, t.Title, due)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "open", "open, all, todo, doing or done")
	return cmd
}

func tasksDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}

			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			task, err := s.CompleteTask(id)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("task %d not found or already done", id)
			}
			if err != nil {
				return err
			}
			fmt.Printf("done #%d %s\n", task.ID, task.Title)
			return nil
		},
	}
}
