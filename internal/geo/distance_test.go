package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripmapper/backend/internal/domain"
	"github.com/tripmapper/backend/internal/geo"
)

func TestHaversine_KochiLandmarks(t *testing.T) {
	// Two points in Kochi roughly 1.5 km apart — expect just under a mile.
	a := domain.Coordinates{Lat: 9.9312, Lng: 76.2673}
	b := domain.Coordinates{Lat: 9.9399, Lng: 76.2566}

	d := geo.Haversine(a, b)

	assert.InDelta(t, 0.94, d, 0.1)
}

func TestHaversine_SamePoint(t *testing.T) {
	p := domain.Coordinates{Lat: 51.5, Lng: -0.12}
	assert.Zero(t, geo.Haversine(p, p))
}

func TestEstimate_PrefersCoordinates(t *testing.T) {
	a := domain.Coordinates{Lat: 9.9312, Lng: 76.2673}
	b := domain.Coordinates{Lat: 9.9399, Lng: 76.2566}
	in := geo.EstimateInput{
		StartCoords: &a,
		EndCoords:   &b,
		// A wildly wrong duration must not matter once coordinates exist.
		DurationMinutes: 600,
		Mode:            "vehicle",
	}

	d := geo.Estimate(in, geo.DefaultSpeeds())

	assert.InDelta(t, 0.94, d, 0.1)
}

func TestEstimate_SpeedFallbackPerMode(t *testing.T) {
	speeds := geo.DefaultSpeeds()

	tests := []struct {
		mode    domain.Mode
		minutes float64
		want    float64
	}{
		{"vehicle", 60, 30},
		{"cycling", 60, 10},
		{"walking", 30, 1.5},
		// Unknown or not-yet-chosen mode uses the generic average.
		{"", 60, 15},
		{"teleport", 60, 15},
	}
	for _, tt := range tests {
		got := geo.Estimate(geo.EstimateInput{DurationMinutes: tt.minutes, Mode: tt.mode}, speeds)
		assert.InDelta(t, tt.want, got, 1e-9, "mode %q", tt.mode)
	}
}

func TestEstimate_NonPositiveDuration(t *testing.T) {
	speeds := geo.DefaultSpeeds()

	assert.Zero(t, geo.Estimate(geo.EstimateInput{DurationMinutes: 0, Mode: "vehicle"}, speeds))
	assert.Zero(t, geo.Estimate(geo.EstimateInput{DurationMinutes: -5, Mode: "vehicle"}, speeds))
}

func TestEstimate_OnlyOneCoordinatePair(t *testing.T) {
	a := domain.Coordinates{Lat: 9.9312, Lng: 76.2673}
	in := geo.EstimateInput{StartCoords: &a, DurationMinutes: 60, Mode: "cycling"}

	// A single endpoint is not enough to measure; fall back to speed.
	assert.InDelta(t, 10, geo.Estimate(in, geo.DefaultSpeeds()), 1e-9)
}
