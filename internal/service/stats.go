package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tripmapper/backend/internal/domain"
	"github.com/tripmapper/backend/internal/repo"
	"github.com/tripmapper/backend/internal/stats"
)

// StatsService answers windowed statistics queries. It holds no state: every
// query re-reads the trip set and recomputes the aggregate from scratch,
// which is the whole consistency strategy — there are no partial aggregates
// to go stale.
type StatsService struct {
	trips repo.TripRepo
}

// NewStatsService constructs a StatsService backed by the provided TripRepo.
func NewStatsService(trips repo.TripRepo) *StatsService {
	return &StatsService{trips: trips}
}

// Window returns aggregate statistics for the trips in the given window.
// An empty userID is the admin scope (all users); otherwise stats cover the
// single user's trips.
func (s *StatsService) Window(ctx context.Context, userID string, w domain.Window, now time.Time) (domain.AggregateStats, error) {
	trips, err := s.scoped(ctx, userID)
	if err != nil {
		return domain.AggregateStats{}, fmt.Errorf("service.StatsService.Window: %w", err)
	}
	return stats.Aggregate(stats.FilterByWindow(trips, w, now), now), nil
}

func (s *StatsService) scoped(ctx context.Context, userID string) ([]domain.Trip, error) {
	if userID == "" {
		return s.trips.List(ctx)
	}
	return s.trips.ListByUser(ctx, userID)
}
