// Package export renders trip sets into the CSV document the admin
// dashboard downloads. The byte layout is frozen: downstream spreadsheets
// and scripts already parse it, so this package reproduces it exactly
// instead of delegating to encoding/csv (which quotes conditionally and
// escapes embedded quotes, changing the output).
package export

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tripmapper/backend/internal/domain"
)

// Header is the fixed first row of every export.
var Header = []string{
	"ID",
	"Start Time",
	"End Time",
	"Start Location",
	"End Location",
	"Purpose",
	"Mode",
	"Duration (mins)",
	"Distance (miles)",
	"Co-Travellers",
}

// ToCSV renders trips into a CSV document, one row per trip in input order.
// Callers wanting a particular order (e.g. most-recent-first) sort first.
//
// Times are ISO-8601 UTC. The two location columns are always wrapped in
// double quotes to tolerate embedded commas; embedded double quotes are NOT
// escaped — a known limitation of the legacy format, kept rather than
// guessing at escaping semantics the format never defined.
//
// Rows are joined with "\n" and there is no trailing newline.
func ToCSV(trips []domain.Trip) string {
	var b strings.Builder
	b.WriteString(strings.Join(Header, ","))

	for _, t := range trips {
		b.WriteByte('\n')
		b.WriteString(row(t))
	}
	return b.String()
}

func row(t domain.Trip) string {
	fields := []string{
		t.ID,
		isoUTC(t.StartTime),
		isoUTC(t.EndTime),
		`"` + t.StartLocation + `"`,
		`"` + t.EndLocation + `"`,
		string(t.Purpose),
		string(t.Mode),
		fmt.Sprintf("%d", durationMins(t)),
		fmt.Sprintf("%.2f", distance(t)),
		fmt.Sprintf("%d", t.CoTravellers),
	}
	return strings.Join(fields, ",")
}

// Filename returns the download filename for an export of the given scope,
// e.g. "trip-data-past-week-2025-09-15.csv". Scope is a window name or a
// specific date label.
func Filename(scope string, now time.Time) string {
	return fmt.Sprintf("trip-data-%s-%s.csv", scope, now.UTC().Format("2006-01-02"))
}

func isoUTC(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02T15:04:05.000Z")
}

func durationMins(t domain.Trip) int64 {
	return int64(math.Round(float64(t.EndTime-t.StartTime) / 60000))
}

func distance(t domain.Trip) float64 {
	if t.Distance > 0 {
		return t.Distance
	}
	return 0
}
