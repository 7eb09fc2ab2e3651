package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/tripmapper/backend/internal/domain"
)

// activityWindow is how long a trip counts as "recent" on the admin feed.
const activityWindow = 5 * time.Minute

// DeriveActivity rebuilds the recent-activity feed from the current trip
// set. Every trip started within the trailing five minutes of now becomes a
// new_trip event. All prior new_trip entries in previous are replaced — the
// feed is re-derived on every snapshot, so carrying them over would
// accumulate duplicates — while entries of other types are preserved.
//
// The result is sorted by timestamp descending. Re-running with the same
// inputs and the same now is idempotent.
func DeriveActivity(trips []domain.Trip, now time.Time, previous []domain.ActivityEvent) []domain.ActivityEvent {
	nowMs := now.UnixMilli()

	feed := make([]domain.ActivityEvent, 0, len(previous))
	for _, t := range trips {
		if nowMs-t.StartTime < activityWindow.Milliseconds() {
			feed = append(feed, domain.ActivityEvent{
				ID:        t.ID,
				Type:      domain.ActivityNewTrip,
				Timestamp: t.StartTime,
				Details:   fmt.Sprintf("New trip from %s to %s", t.StartLocation, t.EndLocation),
			})
		}
	}
	for _, ev := range previous {
		if ev.Type != domain.ActivityNewTrip {
			feed = append(feed, ev)
		}
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp > feed[j].Timestamp
	})
	return feed
}
