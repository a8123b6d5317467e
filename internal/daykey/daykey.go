// Package daykey normalizes points in time to timezone-local calendar-day
// identifiers. Day keys are used as grouping keys for per-day logs such as
// food and sleep entries.
package daykey

import "time"

// Key returns the calendar-day identifier for t in t's own location,
// formatted as YYYY-MM-DD. Two timestamps on the same local calendar day map
// to the same key regardless of how many hours apart they are; timestamps on
// either side of local midnight map to different keys.
func Key(t time.Time) string {
	return t.Format(time.DateOnly)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return Key(a) == Key(b)
}
