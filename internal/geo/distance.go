// Package geo computes trip distances. All functions are pure and perform no
// I/O — geocoding and location lookup happen upstream, this package only
// turns what the client recorded into miles.
package geo

import (
	"math"

	"github.com/tripmapper/backend/internal/domain"
)

// earthRadiusMiles is the mean Earth radius used by the haversine formula.
const earthRadiusMiles = 3959

// GenericSpeedMPH is the assumed average speed used when estimating distance
// before the user has picked a transport mode.
const GenericSpeedMPH = 15

// SpeedTable maps transport modes to assumed average speeds in mph, used
// when a trip has no coordinates to measure against. The values are
// deployment configuration (see config.Load), not engine constants.
type SpeedTable map[domain.Mode]float64

// DefaultSpeeds returns the canonical assumed-speed table.
func DefaultSpeeds() SpeedTable {
	return SpeedTable{
		"walking": 3,
		"cycling": 10,
		"vehicle": 30,
	}
}

// Speed returns the assumed speed for mode, falling back to GenericSpeedMPH
// for modes the table does not know (including the empty mode of a trip that
// has not been finalized yet).
func (t SpeedTable) Speed(mode domain.Mode) float64 {
	if s, ok := t[mode]; ok && s > 0 {
		return s
	}
	return GenericSpeedMPH
}

// EstimateInput carries everything the estimator may use for one trip.
// Coordinates are optional; Mode may be empty when the estimate happens
// before the trip form is filled in.
type EstimateInput struct {
	StartCoords     *domain.Coordinates
	EndCoords       *domain.Coordinates
	DurationMinutes float64
	Mode            domain.Mode
}

// Estimate returns the trip distance in miles, never negative.
//
// When both coordinate pairs are present the distance is the great-circle
// distance between them. Otherwise it falls back to duration × assumed speed
// for the mode. A non-positive duration estimates to 0.
func Estimate(in EstimateInput, speeds SpeedTable) float64 {
	if in.StartCoords != nil && in.EndCoords != nil {
		return Haversine(*in.StartCoords, *in.EndCoords)
	}
	if in.DurationMinutes <= 0 {
		return 0
	}
	return in.DurationMinutes / 60 * speeds.Speed(in.Mode)
}

// Haversine returns the great-circle distance between a and b in miles.
func Haversine(a, b domain.Coordinates) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMiles * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
