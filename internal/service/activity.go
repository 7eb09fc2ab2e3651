package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/tripmapper/backend/internal/domain"
	"github.com/tripmapper/backend/internal/repo"
	"github.com/tripmapper/backend/internal/stats"
)

// Broadcaster pushes a snapshot to every connected live-dashboard client.
// The websocket hub implements it; a nil Broadcaster disables pushing.
type Broadcaster interface {
	Broadcast(v any)
}

// Snapshot is the payload pushed to live admin dashboards whenever a trip is
// saved: the refreshed activity feed plus recomputed all-time stats.
type Snapshot struct {
	Stats    domain.AggregateStats  `json:"stats"`
	Activity []domain.ActivityEvent `json:"activity"`
}

// ActivityService maintains the derived recent-activity feed. The feed
// itself is a pure function of the trip set (stats.DeriveActivity); this
// service only holds the previous evaluation so non-trip event types survive
// between refreshes, and fans refreshed snapshots out to live clients.
type ActivityService struct {
	trips repo.TripRepo
	bc    Broadcaster
	log   *slog.Logger

	mu   sync.Mutex
	feed []domain.ActivityEvent
}

// NewActivityService constructs an ActivityService. bc may be nil when no
// live push channel is wired (e.g. in tests).
func NewActivityService(trips repo.TripRepo, bc Broadcaster, log *slog.Logger) *ActivityService {
	return &ActivityService{trips: trips, bc: bc, log: log}
}

// Feed re-derives and returns the current activity feed.
func (s *ActivityService) Feed(ctx context.Context, now time.Time) ([]domain.ActivityEvent, error) {
	// Only trips from the trailing five minutes can produce events, so the
	// query is bounded regardless of store size.
	recent, err := s.trips.ListSince(ctx, now.Add(-5*time.Minute).UnixMilli())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.feed = stats.DeriveActivity(recent, now, s.feed)
	out := slices.Clone(s.feed)
	s.mu.Unlock()

	if out == nil {
		out = []domain.ActivityEvent{}
	}
	return out, nil
}

// TripSaved implements TripSavedListener: refresh the feed and push a
// snapshot to live clients. Failures are logged, never propagated — a dead
// dashboard connection must not fail a trip save.
func (s *ActivityService) TripSaved(ctx context.Context, _ domain.Trip) {
	now := time.Now()

	feed, err := s.Feed(ctx, now)
	if err != nil {
		s.log.Warn("activity refresh after save failed", "error", err)
		return
	}
	if s.bc == nil {
		return
	}

	all, err := s.trips.List(ctx)
	if err != nil {
		s.log.Warn("stats refresh after save failed", "error", err)
		return
	}
	s.bc.Broadcast(Snapshot{
		Stats:    stats.Aggregate(all, now),
		Activity: feed,
	})
}
