package domain

// TopModeNone is the sentinel TopMode value for an empty trip set.
const TopModeNone = "N/A"

// AggregateStats is the derived summary for a trip set. It is recomputed
// from scratch on every query — there is no incremental state anywhere, so a
// stats response can never reflect a stale partial aggregate.
type AggregateStats struct {
	TotalTrips           int     `json:"totalTrips"`
	TotalDistance        float64 `json:"totalDistance"`
	TotalDurationMinutes float64 `json:"totalDurationMinutes"`
	AvgDurationMinutes   float64 `json:"averageDurationMinutes"`

	// Breakdowns are keyed by the literal mode/purpose strings seen in the
	// input. Unknown values count under their own key, never get rejected.
	ModeBreakdown    map[Mode]int    `json:"modeBreakdown"`
	PurposeBreakdown map[Purpose]int `json:"purposeBreakdown"`

	// TotalParticipants counts the recorder plus co-travellers per trip.
	TotalParticipants int `json:"totalParticipants"`

	// TopMode is the most frequent mode, ties broken by first-encountered
	// order; TopModeNone when the input is empty.
	TopMode string `json:"topMode"`

	// ActiveUserCount is the number of distinct users with a trip in the
	// trailing 30 days, independent of the display window.
	ActiveUserCount int `json:"activeUserCount"`
}
