// File: brightstart/utils/day.go
package utils

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a date input cannot be parsed into a
// calendar day. Callers surface it as a 400, never default silently.
var ErrInvalidDate = errors.New("invalid date")

// dayLayouts are the accepted wire formats for a calendar day, tried in order.
var dayLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDay converts a date string into the canonical day: midnight UTC on the
// calendar day the caller wrote down. The calendar fields are read in the
// input's own zone, so "2025-03-10T23:30:00+02:00" stays March 10 even though
// its UTC instant is 21:30 the same day, and a client in any zone sending
// "2025-03-10" gets March 10, never March 9.
func ParseDay(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrInvalidDate)
	}
	for _, layout := range dayLayouts {
		t, err := time.Parse(layout, input)
		if err == nil {
			return DayOf(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
}

// DayOf truncates a time value to its canonical day, reading the calendar
// fields in the value's own location before re-anchoring to UTC.
func DayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the inclusive lower bound for range queries on a day.
func StartOfDay(day time.Time) time.Time {
	return DayOf(day)
}

// EndOfDay returns the inclusive upper bound for range queries on a day.
func EndOfDay(day time.Time) time.Time {
	return DayOf(day).Add(24*time.Hour - time.Nanosecond)
}

// Today returns the canonical day for the current instant in UTC.
func Today() time.Time {
	return DayOf(time.Now().UTC())
}
