package api

import (
	"net/http"
	"os"

	"github.com/sadopc/wyrm/internal/gitinfo"
	"github.com/sadopc/wyrm/internal/store"
)

type GitHandler struct {
	store *store.Store
}

type gitSummaryRequest struct {
	RepoPath string `json:"repo_path"`
}

// Summary handles POST /git/summary.
func (h *GitHandler) Summary(w http.ResponseWriter, r *http.Request) {
	var req gitSummaryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.RepoPath == "" {
		writeError(w, http.StatusBadRequest, "repo_path is required")
		return
	}
	writeData(w, http.StatusOK, gitinfo.Collect(r.Context(), req.RepoPath))
}

// Standup handles GET /standup/today: open tasks plus the git state
// of the working directory, for the morning ritual.
func (h *GitHandler) Standup(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.ListTasks("open")
	if err != nil {
		writeStoreError(w, err)
		return
	}
	cwd, err := os.Getwd()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, http.StatusOK, map[string]any{
		"tasks": toTaskDTOs(tasks),
		"git":   gitinfo.Collect(r.Context(), cwd),
	})
}
