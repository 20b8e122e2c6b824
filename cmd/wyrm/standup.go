package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/wyrm/internal/gitinfo"
)

func standupCmd() *cobra.Command {
	var repoPath string

	cmd := &cobra.Command{
		Use:   "standup",
		Short: "Print a daily standup summary: open tasks plus git state",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			tasks, err := s.ListTasks("open")
			if err != nil {
				return err
			}

			fmt.Printf("Standup for %s\n\n", time.Now().Format("Monday, Jan 2"))

			fmt.Println("Open tasks:")
			if len(tasks) == 0 {
				fmt.Println("  none, nice")
			}
			for _, t := range tasks {
				due := ""
				if t.DueDate != nil {
					due = "  (due " + *t.DueDate + ")"
				}
				fmt.Printf("  [%s] %s%s\n", t.Priority, t.Title, due)
			}

			if repoPath == "" {
				repoPath, _ = os.Getwd()
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			git := gitinfo.Collect(ctx, repoPath)

			fmt.Println("\nGit:")
			printGit(git)
			return nil
		},
	}

	cmd.Flags().StringVarP(&repoPath, "repo", "r", "", "repository path (defaults to cwd)")
	return cmd
}

func printGit(g gitinfo.Summary) {
	if g.Error != "" {
		fmt.Printf("  %s\n", g.Error)
		return
	}
	if !g.IsRepo {
		fmt.Println("  not a git repository")
		return
	}
	branch := "(detached)"
	if g.Branch != nil && *g.Branch != "" {
		branch = *g.Branch
	}
	fmt.Printf("  branch %s\n", branch)
	if g.DirtyCount != nil {
		fmt.Printf("  %d dirty files (%d staged, %d unstaged)\n", *g.DirtyCount, g.Staged, g.Unstaged)
	}
	if g.LastCommit != nil {
		fmt.Printf("  last commit: %s\n", *g.LastCommit)
	}
}
