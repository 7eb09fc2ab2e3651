// Package domain contains the core data types for the TripMapper backend.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (repo, service, handler, stats, export).
package domain

import "github.com/google/uuid"

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Trip represents a single recorded journey. Timestamps are integer
// milliseconds since the Unix epoch — the unit the clients record in and the
// unit every duration formula in this codebase is written against.
//
// A trip is immutable once saved; there is no update or delete surface.
type Trip struct {
	ID     string `json:"id"`
	UserID string `json:"userId,omitempty"`

	StartTime int64 `json:"startTime"`
	EndTime   int64 `json:"endTime"`

	StartLocation string `json:"startLocation"`
	EndLocation   string `json:"endLocation"`

	// Coordinates are optional: clients without location access record
	// human-readable labels only, and distance falls back to a speed-based
	// estimate.
	StartCoords *Coordinates `json:"startCoords,omitempty"`
	EndCoords   *Coordinates `json:"endCoords,omitempty"`

	Mode         Mode    `json:"mode"`
	Purpose      Purpose `json:"purpose"`
	CoTravellers int     `json:"coTravellers"`

	// Distance in miles, measured or estimated. Always >= 0 once saved.
	Distance float64 `json:"distance"`
}

// DurationMinutes returns the trip's elapsed time in minutes.
// Negative spans (endTime before startTime) are clamped to 0 so a single
// corrupt record cannot poison an aggregate.
func (t Trip) DurationMinutes() float64 {
	if t.EndTime <= t.StartTime {
		return 0
	}
	return float64(t.EndTime-t.StartTime) / 60000
}

// NewTripID returns a fresh trip identifier.
// IDs are assigned at save time, never by clients.
func NewTripID() string {
	return uuid.NewString()
}
