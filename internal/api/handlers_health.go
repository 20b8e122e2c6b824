package api

import "net/http"

// Health reports liveness for the desktop frontend.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": "wyrm backend is running",
	})
}
