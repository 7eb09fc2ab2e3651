package domain

// ActivityType classifies entries in the admin activity feed.
type ActivityType string

const (
	ActivityNewTrip ActivityType = "new_trip"
	ActivityNewUser ActivityType = "new_user"
	ActivityExport  ActivityType = "export"
)

// ActivityEvent is one entry in the recent-activity feed on the admin
// dashboard. Events are transient views derived from trips seen within a
// trailing window of now; they are never persisted on their own.
type ActivityEvent struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	Timestamp int64        `json:"timestamp"`
	Details   string       `json:"details"`
}
