package api

import (
	"net/http"
	"strconv"

	"github.com/sadopc/wyrm/internal/github"
)

type GitHubHandler struct {
	loader *github.Loader
}

// Summary handles GET /github/summary?year=. A missing snapshot is a
// valid empty response, not an error.
func (h *GitHubHandler) Summary(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	writeData(w, http.StatusOK, h.loader.Summary(year))
}

// Avatar handles GET /github/avatar?file= by serving the synced
// avatar image from the data dir.
func (h *GitHubHandler) Avatar(w http.ResponseWriter, r *http.Request) {
	path := h.loader.AvatarPath(r.URL.Query().Get("file"))
	if path == "" {
		writeError(w, http.StatusNotFound, "avatar not found")
		return
	}
	http.ServeFile(w, r, path)
}
