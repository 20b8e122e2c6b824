package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sadopc/wyrm/internal/store"
)

type TaskHandler struct {
	store *store.Store
}

type taskCreateRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
}

// taskUpdateRequest mirrors store.TaskPatch on the wire. Absent keys
// stay nil and leave the column untouched.
type taskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

func taskID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// List handles GET /tasks?status=all|open|todo|doing|done.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("status")
	if filter == "" {
		filter = "all"
	}
	tasks, err := h.store.ListTasks(filter)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, toTaskDTOs(tasks))
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req taskCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	task, err := h.store.CreateTask(req.Title, req.Description, req.Priority, req.DueDate)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, toTaskDTO(task))
}

// Update handles PUT /tasks/{id}. Omitted fields are untouched; an
// explicit empty due_date clears it.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}
	var req taskUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	task, err := h.store.UpdateTask(id, store.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Status:      req.Status,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, toTaskDTO(task))
}

// Toggle handles POST /tasks/{id}/toggle_done.
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}
	task, err := h.store.ToggleTask(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, toTaskDTO(task))
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}
	if err := h.store.DeleteTask(id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int64{"deleted": id})
}
