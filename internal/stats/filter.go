// Package stats is the aggregation and reporting core: time-window
// filtering, summary statistics, and the derived admin activity feed.
//
// Every function here is a pure function of its inputs. "Now" is always an
// explicit parameter, never the wall clock, so the whole package is
// deterministic under test and safe to re-run on every store snapshot
// without any synchronization.
package stats

import (
	"time"

	"github.com/tripmapper/backend/internal/domain"
)

// FilterByWindow returns the order-preserving subsequence of trips whose
// start time falls at or after the window's cutoff relative to now.
//
// All-time returns the input slice unchanged. No upper bound is applied:
// future-dated start times stay in, since now only ever moves toward them.
func FilterByWindow(trips []domain.Trip, w domain.Window, now time.Time) []domain.Trip {
	if !w.Bounded() {
		return trips
	}
	cutoff := w.Cutoff(now)
	out := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		if t.StartTime >= cutoff {
			out = append(out, t)
		}
	}
	return out
}
