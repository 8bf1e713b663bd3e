// Package calendar provides day-granularity dates and month arithmetic.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidWeekday    = errors.New("unknown weekday name")
)

// Date is a calendar date compared at day granularity.
// Month is 1-12, Day is 1-31. The zero value is not a valid date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate creates a Date from year, month and day.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime converts a time.Time to a Date, dropping the time of day.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Today returns the current date in local time.
func Today() Date {
	return FromTime(time.Now())
}

// Time returns the date at midnight in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Compare returns -1 if d is before other, 0 if equal, +1 if after.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(d.Month - other.Month)
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// MonthStart returns the date truncated to the first day of its month.
func (d Date) MonthStart() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Parse parses a date string in YYYY-MM-DD format and rejects
// impossible dates such as 2025-02-30.
func Parse(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDateFormat
	}
	return FromTime(t), nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
