package stats

import (
	"time"

	"github.com/tripmapper/backend/internal/domain"
)

// activeUserWindow is the fixed trailing window for the active-user count.
// It is deliberately independent of the caller's display window: the number
// answers "how many distinct users were active recently", not "how many
// trips are on screen".
const activeUserWindow = 30 * 24 * time.Hour

// Aggregate computes summary statistics over trips. It is total: malformed
// records degrade (negative durations and co-traveller counts clamp to 0,
// unknown modes and purposes bucket under their literal value) and an empty
// input yields zero counts with non-nil breakdown maps.
func Aggregate(trips []domain.Trip, now time.Time) domain.AggregateStats {
	s := domain.AggregateStats{
		ModeBreakdown:    make(map[domain.Mode]int),
		PurposeBreakdown: make(map[domain.Purpose]int),
		TopMode:          domain.TopModeNone,
	}

	activeCutoff := now.Add(-activeUserWindow).UnixMilli()
	activeUsers := make(map[string]struct{})

	// Tracks first-encountered order so TopMode ties resolve stably.
	var modeOrder []domain.Mode

	for _, t := range trips {
		s.TotalTrips++
		if t.Distance > 0 {
			s.TotalDistance += t.Distance
		}
		s.TotalDurationMinutes += t.DurationMinutes()

		if _, seen := s.ModeBreakdown[t.Mode]; !seen {
			modeOrder = append(modeOrder, t.Mode)
		}
		s.ModeBreakdown[t.Mode]++
		s.PurposeBreakdown[t.Purpose]++

		s.TotalParticipants++ // the recorder
		if t.CoTravellers > 0 {
			s.TotalParticipants += t.CoTravellers
		}

		if t.UserID != "" && t.StartTime >= activeCutoff {
			activeUsers[t.UserID] = struct{}{}
		}
	}

	if s.TotalTrips > 0 {
		s.AvgDurationMinutes = s.TotalDurationMinutes / float64(s.TotalTrips)
	}
	s.ActiveUserCount = len(activeUsers)

	best := -1
	for _, m := range modeOrder {
		if s.ModeBreakdown[m] > best {
			best = s.ModeBreakdown[m]
			s.TopMode = string(m)
		}
	}

	return s
}
