// Package service contains the business logic for the TripMapper backend.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tripmapper/backend/internal/domain"
	"github.com/tripmapper/backend/internal/geo"
	"github.com/tripmapper/backend/internal/repo"
)

// ActiveTrip is the provisional record held while a user's trip is in
// progress. It lives only in memory — nothing reaches the store until the
// user confirms the finished trip's details.
type ActiveTrip struct {
	UserID        string              `json:"userId"`
	StartTime     int64               `json:"startTime"`
	StartLocation string              `json:"startLocation"`
	StartCoords   *domain.Coordinates `json:"startCoords,omitempty"`
}

// TripSavedListener is notified after a trip has been persisted.
// The activity feed uses this to refresh without polling.
type TripSavedListener interface {
	TripSaved(ctx context.Context, trip domain.Trip)
}

// TripService implements the two-phase trip lifecycle: a provisional start
// held in session state, a finish that produces a distance-estimated draft,
// and a save that validates and persists the confirmed trip.
type TripService struct {
	repo   repo.TripRepo
	vocab  domain.Vocabulary
	speeds geo.SpeedTable

	mu     sync.Mutex
	active map[string]ActiveTrip // keyed by user ID

	listener TripSavedListener // optional
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo, vocab domain.Vocabulary, speeds geo.SpeedTable) *TripService {
	return &TripService{
		repo:   r,
		vocab:  vocab,
		speeds: speeds,
		active: make(map[string]ActiveTrip),
	}
}

// SetListener registers the post-save listener. Call during wiring, before
// the service starts handling requests.
func (s *TripService) SetListener(l TripSavedListener) {
	s.listener = l
}

// Start opens a provisional trip for the user. Starting again while a trip
// is already active replaces the previous provisional record — the client's
// "start" button is the source of truth, not the server.
func (s *TripService) Start(userID, startLocation string, startCoords *domain.Coordinates, now time.Time) (ActiveTrip, error) {
	if strings.TrimSpace(userID) == "" {
		return ActiveTrip{}, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(startLocation) == "" {
		return ActiveTrip{}, fmt.Errorf("%w: start location is required", domain.ErrValidation)
	}

	at := ActiveTrip{
		UserID:        userID,
		StartTime:     now.UnixMilli(),
		StartLocation: startLocation,
		StartCoords:   startCoords,
	}

	s.mu.Lock()
	s.active[userID] = at
	s.mu.Unlock()

	return at, nil
}

// Active returns the user's provisional trip, if any.
func (s *TripService) Active(userID string) (ActiveTrip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.active[userID]
	return at, ok
}

// Finish closes the user's provisional trip and returns a draft Trip with an
// estimated distance. The draft is NOT persisted — the client presents it
// for confirmation (mode, purpose, co-travellers) and then calls Save.
//
// Returns domain.ErrNoActiveTrip when the user has no trip in progress.
func (s *TripService) Finish(userID, endLocation string, endCoords *domain.Coordinates, now time.Time) (domain.Trip, error) {
	if strings.TrimSpace(endLocation) == "" {
		return domain.Trip{}, fmt.Errorf("%w: end location is required", domain.ErrValidation)
	}

	s.mu.Lock()
	at, ok := s.active[userID]
	if ok {
		delete(s.active, userID)
	}
	s.mu.Unlock()

	if !ok {
		return domain.Trip{}, fmt.Errorf("service.TripService.Finish: %w", domain.ErrNoActiveTrip)
	}

	draft := domain.Trip{
		UserID:        userID,
		StartTime:     at.StartTime,
		EndTime:       now.UnixMilli(),
		StartLocation: at.StartLocation,
		EndLocation:   endLocation,
		StartCoords:   at.StartCoords,
		EndCoords:     endCoords,
	}
	// The mode is not chosen yet, so a coordinate-less estimate uses the
	// generic average speed.
	draft.Distance = geo.Estimate(geo.EstimateInput{
		StartCoords:     draft.StartCoords,
		EndCoords:       draft.EndCoords,
		DurationMinutes: draft.DurationMinutes(),
	}, s.speeds)

	return draft, nil
}

// Save validates and persists a confirmed trip, assigning an ID.
// Saved trips are immutable; there is no update path.
func (s *TripService) Save(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := s.validate(&trip); err != nil {
		return domain.Trip{}, err
	}

	if trip.Distance == 0 {
		trip.Distance = geo.Estimate(geo.EstimateInput{
			StartCoords:     trip.StartCoords,
			EndCoords:       trip.EndCoords,
			DurationMinutes: trip.DurationMinutes(),
			Mode:            trip.Mode,
		}, s.speeds)
	}

	saved, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w", err)
	}

	if s.listener != nil {
		s.listener.TripSaved(ctx, saved)
	}
	return saved, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// ListPaged returns one page of trips. An empty userID is the admin scope:
// all users' trips. Always returns a non-nil slice.
func (s *TripService) ListPaged(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.repo.ListPaged(ctx, userID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// validate enforces the save-time business rules. Modes and purposes from
// the configured vocabulary are canonicalized; values outside it are carried
// through verbatim so legacy or variant deployments keep working.
func (s *TripService) validate(trip *domain.Trip) error {
	if trip.EndTime < trip.StartTime {
		return fmt.Errorf("%w: end time must not be before start time", domain.ErrValidation)
	}
	if trip.CoTravellers < 0 {
		return fmt.Errorf("%w: co-travellers must not be negative", domain.ErrValidation)
	}
	if trip.Distance < 0 {
		return fmt.Errorf("%w: distance must not be negative", domain.ErrValidation)
	}
	if strings.TrimSpace(string(trip.Mode)) == "" {
		return fmt.Errorf("%w: mode is required", domain.ErrValidation)
	}
	if strings.TrimSpace(string(trip.Purpose)) == "" {
		return fmt.Errorf("%w: purpose is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.StartLocation) == "" || strings.TrimSpace(trip.EndLocation) == "" {
		return fmt.Errorf("%w: start and end locations are required", domain.ErrValidation)
	}

	trip.Mode, _ = s.vocab.CanonicalMode(string(trip.Mode))
	trip.Purpose, _ = s.vocab.CanonicalPurpose(string(trip.Purpose))
	return nil
}
