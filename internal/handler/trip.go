package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tripmapper/backend/internal/domain"
)

type startTripRequest struct {
	UserID        string              `json:"userId"`
	StartLocation string              `json:"startLocation"`
	StartCoords   *domain.Coordinates `json:"startCoords,omitempty"`
}

type finishTripRequest struct {
	UserID      string              `json:"userId"`
	EndLocation string              `json:"endLocation"`
	EndCoords   *domain.Coordinates `json:"endCoords,omitempty"`
}

type tripListResponse struct {
	Trips []domain.Trip `json:"trips"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int64         `json:"total"`
}

// StartTrip opens a provisional trip for a user.
// POST /trips/start
func (s *Server) StartTrip(w http.ResponseWriter, r *http.Request) {
	var req startTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	active, err := s.trips.Start(req.UserID, req.StartLocation, req.StartCoords, s.now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, active)
}

// FinishTrip closes the user's provisional trip and returns an unsaved draft
// with an estimated distance. The client confirms the draft via SaveTrip.
// POST /trips/finish
func (s *Server) FinishTrip(w http.ResponseWriter, r *http.Request) {
	var req finishTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	draft, err := s.trips.Finish(req.UserID, req.EndLocation, req.EndCoords, s.now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// SaveTrip validates and persists a confirmed trip.
// POST /trips
func (s *Server) SaveTrip(w http.ResponseWriter, r *http.Request) {
	var trip domain.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	saved, err := s.trips.Save(r.Context(), trip)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// GetTrip returns a single trip by ID.
// GET /trips/{id}
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// ListTrips returns one page of trips, most recent first. With user_id set
// the page is scoped to that user; without it the caller sees all trips.
// GET /trips?user_id=&page=&limit=
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	p := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	userID := r.URL.Query().Get("user_id")

	trips, total, err := s.trips.ListPaged(r.Context(), userID, p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tripListResponse{
		Trips: trips,
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
	})
}

// queryInt parses an optional integer query param. Absent or malformed
// values return nil so pagination falls back to its defaults.
func queryInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
