package calendar

import (
	"strings"
	"time"
)

// WeekStart names the weekday rendered in the first column of a
// calendar row: 0=Sunday through 6=Saturday.
type WeekStart int

// Common week-start conventions.
const (
	WeekStartSunday WeekStart = iota
	WeekStartMonday
	WeekStartTuesday
	WeekStartWednesday
	WeekStartThursday
	WeekStartFriday
	WeekStartSaturday
)

// weekdayNames maps lowercase weekday names to time.Weekday values.
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday converts a weekday name to a time.Weekday.
// Names are case-insensitive.
func ParseWeekday(name string) (time.Weekday, error) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, ErrInvalidWeekday
	}
	return wd, nil
}

// ParseWeekStart converts a weekday name to a WeekStart.
// Names are case-insensitive.
func ParseWeekStart(name string) (WeekStart, error) {
	wd, err := ParseWeekday(name)
	if err != nil {
		return 0, err
	}
	return WeekStart(wd), nil
}

// Weekday returns the time.Weekday of the first column.
func (w WeekStart) Weekday() time.Weekday {
	return time.Weekday(int(w) % 7)
}

// ColumnLabels returns the seven weekday abbreviations in grid order,
// starting from the week-start column.
func (w WeekStart) ColumnLabels() []string {
	labels := make([]string, 7)
	for i := range labels {
		wd := time.Weekday((int(w) + i) % 7)
		labels[i] = wd.String()[:2]
	}
	return labels
}

// String returns the lowercase weekday name of the convention.
func (w WeekStart) String() string {
	return strings.ToLower(w.Weekday().String())
}
