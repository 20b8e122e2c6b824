package api

import (
	"net/http"
	"path/filepath"

	"github.com/sadopc/wyrm/internal/forge"
	"github.com/sadopc/wyrm/internal/store"
)

type ReadmeHandler struct {
	store  *store.Store
	outDir string
}

type readmeProfileRequest struct {
	Name  string `json:"name"`
	Style string `json:"style"`
}

type readmeProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Style       string `json:"style"`
}

// Profile handles POST /readme/profile: render, write to the out dir,
// and append a history record.
func (h *ReadmeHandler) Profile(w http.ResponseWriter, r *http.Request) {
	var req readmeProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	style, err := forge.NormalizeStyle(req.Style)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	content := forge.RenderProfile(req.Name, style)
	path, err := forge.WriteOutput(content, filepath.Join(h.outDir, "PROFILE_README.md"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if _, err := h.store.AddReadmeRecord("profile", req.Name, style, path); err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]string{
		"path":    path,
		"style":   style,
		"content": content,
	})
}

// Project handles POST /readme/project.
func (h *ReadmeHandler) Project(w http.ResponseWriter, r *http.Request) {
	var req readmeProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	style, err := forge.NormalizeStyle(req.Style)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	content := forge.RenderProject(req.Title, req.Description, style)
	path, err := forge.WriteOutput(content, filepath.Join(h.outDir, "PROJECT_README.md"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if _, err := h.store.AddReadmeRecord("project", req.Title, style, path); err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]string{
		"path":    path,
		"style":   style,
		"content": content,
	})
}

// History handles GET /readme/history.
func (h *ReadmeHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListReadmeHistory(50)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, toReadmeDTOs(records))
}
