package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripmapper/backend/internal/domain"
	"github.com/tripmapper/backend/internal/export"
)

func sampleTrip() domain.Trip {
	return domain.Trip{
		ID:            "t1",
		UserID:        "u1",
		StartTime:     1700000000000,
		EndTime:       1700000900000, // 15 minutes later
		StartLocation: "Fort Kochi",
		EndLocation:   "Ernakulam, South",
		Mode:          "vehicle",
		Purpose:       "work",
		CoTravellers:  2,
		Distance:      5.0,
	}
}

func TestToCSV_EmptyInputHeaderOnly(t *testing.T) {
	got := export.ToCSV(nil)

	assert.Equal(t,
		"ID,Start Time,End Time,Start Location,End Location,Purpose,Mode,Duration (mins),Distance (miles),Co-Travellers",
		got)
	assert.NotContains(t, got, "\n")
}

func TestToCSV_SingleRow(t *testing.T) {
	got := export.ToCSV([]domain.Trip{sampleTrip()})

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		`t1,2023-11-14T22:13:20.000Z,2023-11-14T22:28:20.000Z,"Fort Kochi","Ernakulam, South",work,vehicle,15,5.00,2`,
		lines[1])
}

func TestToCSV_OneLinePerTripPlusHeader(t *testing.T) {
	trips := make([]domain.Trip, 5)
	for i := range trips {
		trips[i] = sampleTrip()
	}

	got := export.ToCSV(trips)

	assert.Len(t, strings.Split(got, "\n"), len(trips)+1)
	assert.False(t, strings.HasSuffix(got, "\n"), "no trailing newline")
}

func TestToCSV_PreservesInputOrder(t *testing.T) {
	first := sampleTrip()
	first.ID = "first"
	second := sampleTrip()
	second.ID = "second"

	lines := strings.Split(export.ToCSV([]domain.Trip{first, second}), "\n")

	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "first,"))
	assert.True(t, strings.HasPrefix(lines[2], "second,"))
}

func TestToCSV_MissingDistanceRendersZero(t *testing.T) {
	trip := sampleTrip()
	trip.Distance = 0

	got := export.ToCSV([]domain.Trip{trip})

	assert.Contains(t, got, ",0.00,")
}

func TestToCSV_DistanceTwoDecimalPlaces(t *testing.T) {
	trip := sampleTrip()
	trip.Distance = 1.23456

	got := export.ToCSV([]domain.Trip{trip})

	assert.Contains(t, got, ",1.23,")
}

func TestToCSV_DurationRounded(t *testing.T) {
	trip := sampleTrip()
	trip.EndTime = trip.StartTime + 90000 // 1.5 minutes rounds to 2

	got := export.ToCSV([]domain.Trip{trip})

	assert.Contains(t, got, ",2,")
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 9, 15, 23, 45, 0, 0, time.UTC)

	assert.Equal(t, "trip-data-past-week-2025-09-15.csv", export.Filename("past-week", now))
	assert.Equal(t, "trip-data-all-time-2025-09-15.csv", export.Filename("all-time", now))
}
