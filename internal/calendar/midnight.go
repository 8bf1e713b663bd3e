package calendar

import "time"

// NextMidnight returns the first instant of the day after t, in t's
// location. Used to schedule the "today" highlight refresh.
func NextMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}

// UntilMidnight returns the duration from t until the next local
// midnight. Always positive.
func UntilMidnight(t time.Time) time.Duration {
	return NextMidnight(t).Sub(t)
}
