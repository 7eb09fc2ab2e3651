package domain

import (
	"fmt"
	"time"
)

// Window is a named relative time range used to filter trips for reporting.
// A trip belongs to a window iff its start time is at or after the window's
// cutoff; there is no upper bound, since "now" keeps moving in a live view.
type Window string

const (
	// WindowAllTime applies no cutoff.
	WindowAllTime Window = "all-time"
	// WindowPastWeek covers the trailing 7 days (a fixed 168 hours).
	WindowPastWeek Window = "past-week"
	// WindowPastMonth covers the trailing calendar month — the month field
	// decremented by one, not a fixed 30 days.
	WindowPastMonth Window = "past-month"
	// WindowToday covers the current calendar day, from local midnight.
	WindowToday Window = "today"
)

// ParseWindow converts a query-string value into a Window.
// The empty string defaults to all-time. Unknown names return ErrValidation.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case "":
		return WindowAllTime, nil
	case WindowAllTime, WindowPastWeek, WindowPastMonth, WindowToday:
		return Window(s), nil
	}
	return "", fmt.Errorf("%w: unknown time window %q", ErrValidation, s)
}

// Cutoff returns the window's lower bound in epoch milliseconds, relative to
// now. For WindowAllTime the cutoff is 0 and Bounded reports false.
//
// WindowToday uses midnight in now's location, so callers control the
// reporting timezone by the Location they attach to now.
func (w Window) Cutoff(now time.Time) int64 {
	switch w {
	case WindowPastWeek:
		return now.Add(-7 * 24 * time.Hour).UnixMilli()
	case WindowPastMonth:
		return now.AddDate(0, -1, 0).UnixMilli()
	case WindowToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).UnixMilli()
	}
	return 0
}

// Bounded reports whether the window applies any cutoff at all.
func (w Window) Bounded() bool {
	return w != WindowAllTime && w != ""
}
