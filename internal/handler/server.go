// Package handler implements the HTTP handlers for the TripMapper API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, stats.go, ...) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tripmapper/backend/internal/domain"
	"github.com/tripmapper/backend/internal/service"
	"github.com/tripmapper/backend/internal/ws"
)

// TripServicer defines the trip operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Start(userID, startLocation string, startCoords *domain.Coordinates, now time.Time) (service.ActiveTrip, error)
	Finish(userID, endLocation string, endCoords *domain.Coordinates, now time.Time) (domain.Trip, error)
	Save(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id string) (domain.Trip, error)
	ListPaged(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Trip, int64, error)
}

// StatsServicer defines the statistics operations the handlers depend on.
type StatsServicer interface {
	Window(ctx context.Context, userID string, w domain.Window, now time.Time) (domain.AggregateStats, error)
}

// ExportServicer defines the CSV export operation the handlers depend on.
type ExportServicer interface {
	Export(ctx context.Context, w domain.Window, now time.Time) (csv, filename string, err error)
}

// ActivityServicer defines the activity feed operation the handlers depend on.
type ActivityServicer interface {
	Feed(ctx context.Context, now time.Time) ([]domain.ActivityEvent, error)
}

// Server holds every handler's dependencies.
type Server struct {
	trips    TripServicer
	stats    StatsServicer
	export   ExportServicer
	activity ActivityServicer
	hub      *ws.Hub

	// now is injectable so handler tests control the clock.
	now func() time.Time
}

// NewServer constructs the Server with all its dependencies.
// hub may be nil when the live feed is not wired (e.g. in tests).
func NewServer(trips TripServicer, stats StatsServicer, export ExportServicer, activity ActivityServicer, hub *ws.Hub) *Server {
	return &Server{
		trips:    trips,
		stats:    stats,
		export:   export,
		activity: activity,
		hub:      hub,
		now:      time.Now,
	}
}

// SetClock overrides the server's notion of now. Test use only.
func (s *Server) SetClock(now func() time.Time) {
	s.now = now
}

// Routes mounts every endpoint on a fresh chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.SaveTrip)
		r.Get("/", s.ListTrips)
		r.Post("/start", s.StartTrip)
		r.Post("/finish", s.FinishTrip)
		r.Get("/{id}", s.GetTrip)
	})

	r.Get("/stats", s.GetStats)
	r.Get("/export", s.GetExport)
	r.Get("/activity", s.GetActivity)
	r.Get("/activity/ws", s.ActivityWS)

	return r
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
