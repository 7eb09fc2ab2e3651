package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tripmapper/backend/internal/domain"
	"github.com/tripmapper/backend/internal/export"
	"github.com/tripmapper/backend/internal/repo"
	"github.com/tripmapper/backend/internal/stats"
)

// ExportService assembles the admin CSV download: every user's trips in the
// requested window, most recent first, in the frozen legacy column layout.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided TripRepo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export renders the window's trips to CSV and returns the document together
// with its download filename (trip-data-<window>-<date>.csv).
func (s *ExportService) Export(ctx context.Context, w domain.Window, now time.Time) (csv, filename string, err error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return "", "", fmt.Errorf("service.ExportService.Export: %w", err)
	}

	// The repo lists most-recent-first; ToCSV preserves that order.
	windowed := stats.FilterByWindow(trips, w, now)
	return export.ToCSV(windowed), export.Filename(string(w), now), nil
}
