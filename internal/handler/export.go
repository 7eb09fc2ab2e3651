package handler

import (
	"fmt"
	"net/http"

	"github.com/tripmapper/backend/internal/domain"
)

// GetExport streams the window's trips as a CSV download.
// GET /export?window=
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	window, err := domain.ParseWindow(r.URL.Query().Get("window"))
	if err != nil {
		writeError(w, err)
		return
	}

	csv, filename, err := s.export.Export(r.Context(), window, s.now())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}
