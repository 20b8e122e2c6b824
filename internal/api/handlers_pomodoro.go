package api

import (
	"net/http"

	"github.com/sadopc/wyrm/internal/store"
)

type PomodoroHandler struct {
	store *store.Store
}

type pomodoroStartRequest struct {
	Mode            string `json:"mode"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Start handles POST /pomodoro/start.
func (h *PomodoroHandler) Start(w http.ResponseWriter, r *http.Request) {
	req := pomodoroStartRequest{Mode: store.ModeFocus, DurationMinutes: 25}
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	sess, err := h.store.StartSession(req.Mode, req.DurationMinutes)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, toSessionDTO(sess))
}

// Pause handles POST /pomodoro/pause.
func (h *PomodoroHandler) Pause(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.PauseSession()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, toSessionDTO(sess))
}

// Resume handles POST /pomodoro/resume.
func (h *PomodoroHandler) Resume(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.ResumeSession()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, toSessionDTO(sess))
}

// Stop handles POST /pomodoro/stop.
func (h *PomodoroHandler) Stop(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.StopSession()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, toSessionDTO(sess))
}

// Status handles GET /pomodoro/status. An idle tracker reports
// {"status":"idle"} rather than an error.
func (h *PomodoroHandler) Status(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.ActiveSession()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if sess == nil {
		writeData(w, http.StatusOK, map[string]string{"status": "idle"})
		return
	}
	writeData(w, http.StatusOK, toSessionDTO(sess))
}

// Stats handles GET /pomodoro/stats?range=today|week|all.
func (h *PomodoroHandler) Stats(w http.ResponseWriter, r *http.Request) {
	rng := r.URL.Query().Get("range")
	if rng == "" {
		rng = "today"
	}
	stats, err := h.store.GetPomodoroStats(rng)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, toPomodoroStatsDTO(stats))
}
