// Package gitinfo collects a read-only snapshot of a git worktree.
package gitinfo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Summary is a point-in-time view of a repository's state.
type Summary struct {
	IsRepo     bool    `json:"is_repo"`
	Branch     *string `json:"branch"`
	DirtyCount *int    `json:"dirty_count"`
	Staged     int     `json:"staged"`
	Unstaged   int     `json:"unstaged"`
	LastCommit *string `json:"last_commit"`
	Error      string  `json:"error,omitempty"`
}

func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = "git command failed"
		}
		return "", fmt.Errorf("git %s: %s", args[0], msg)
	}
	return strings.TrimSpace(string(out)), nil
}

// Collect inspects the repository at dir. Only read-only git commands
// are issued. A missing directory or non-repo path yields IsRepo false
// rather than an error.
func Collect(ctx context.Context, dir string) Summary {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return Summary{Error: "repo path not found"}
	}

	inside, err := runGit(ctx, dir, "rev-parse", "--is-inside-work-tree")
	if err != nil || strings.ToLower(inside) != "true" {
		return Summary{}
	}

	s := Summary{IsRepo: true}
	if branch, err := runGit(ctx, dir, "branch", "--show-current"); err == nil && branch != "" {
		s.Branch = &branch
	}
	if status, err := runGit(ctx, dir, "status", "--porcelain"); err == nil {
		dirty, staged, unstaged := countDirty(status)
		s.DirtyCount = &dirty
		s.Staged = staged
		s.Unstaged = unstaged
	}
	if subject, err := runGit(ctx, dir, "log", "-1", "--pretty=%s"); err == nil && subject != "" {
		s.LastCommit = &subject
	}
	return s
}

// countDirty parses `git status --porcelain` output. The first two
// columns are the staged (X) and unstaged (Y) state letters.
func countDirty(status string) (dirty, staged, unstaged int) {
	for _, line := range strings.Split(status, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		dirty++
		x := line[0]
		var y byte = ' '
		if len(line) > 1 {
			y = line[1]
		}
		if x != ' ' && x != '?' {
			staged++
		}
		if y != ' ' || x == '?' {
			unstaged++
		}
	}
	return dirty, staged, unstaged
}
