package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/sadopc/wyrm/internal/store"
)

type ActivityHandler struct {
	store *store.Store
}

type activityEventRequest struct {
	EventType string `json:"event_type"`
	Details   string `json:"details"`
}

// queryInt reads an integer query parameter. An absent value falls
// back to the default; a present value must parse and lie in
// [min, max].
func queryInt(r *http.Request, key string, fallback, min, max int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return v, nil
}

// RecordEvent handles POST /activity/event. The editor extension
// posts active/inactive/typing signals here.
func (h *ActivityHandler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req activityEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	event, err := h.store.RecordEvent(req.EventType, req.Details)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, toEventDTO(event))
}

// Status handles GET /activity/status?window_hours=1..24.
func (h *ActivityHandler) Status(w http.ResponseWriter, r *http.Request) {
	window, err := queryInt(r, "window_hours", 1, 1, 24)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	summary, err := h.store.GetActivitySummary(window)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, toActivitySummaryDTO(summary))
}

// History handles GET /activity/history?window_hours=&limit=.
func (h *ActivityHandler) History(w http.ResponseWriter, r *http.Request) {
	window, err := queryInt(r, "window_hours", 24, 1, 24)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := queryInt(r, "limit", 50, 1, 200)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	events, err := h.store.ListEvents(window, limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, toEventDTOs(events))
}

// Heatmap handles GET /activity/heatmap?days=7..365.
func (h *ActivityHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 90, 7, 365)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	heatmap, err := h.store.GetHeatmap(days)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, toHeatmapDTOs(heatmap))
}

// Timeline handles GET /activity/timeline?date=&bucket_minutes=.
func (h *ActivityHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	bucket, err := queryInt(r, "bucket_minutes", 10, 5, 60)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	buckets, err := h.store.GetTimeline(date, bucket)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]any{
		"date":           date,
		"bucket_minutes": bucket,
		"buckets":        toTimelineDTOs(buckets),
	})
}
