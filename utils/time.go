package utils

import "time"

// Inclusive date range
type TimeSpan struct {
	From time.Time
	To   time.Time
}

// Checks if t falls inside the span, endpoints included
func (ts *TimeSpan) Contains(t time.Time) bool {
	return !t.Before(ts.From) && !t.After(ts.To)
}

func (ts *TimeSpan) String() string {
	return ts.From.Format(time.DateOnly) + " to " + ts.To.Format(time.DateOnly)
}
