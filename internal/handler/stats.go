package handler

import (
	"net/http"

	"github.com/tripmapper/backend/internal/domain"
)

// GetStats returns aggregate statistics for a time window.
// An empty user_id is the admin scope: every user's trips.
// GET /stats?window=&user_id=
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	window, err := domain.ParseWindow(r.URL.Query().Get("window"))
	if err != nil {
		writeError(w, err)
		return
	}

	stats, err := s.stats.Window(r.Context(), r.URL.Query().Get("user_id"), window, s.now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
