package calendar

import "time"

// monthLengths holds the day count of each month in a non-leap year.
var monthLengths = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month (1-12)
// under the proleptic Gregorian calendar.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month]
}

// FirstDayOffset returns the number of leading blank cells before day 1
// in a month grid whose first column is weekStart. The result is in [0,6].
func FirstDayOffset(year, month int, weekStart WeekStart) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	weekdayFromMonday := (int(first.Weekday()) + 6) % 7
	startFromMonday := floorMod(int(weekStart)-1, 7)
	return floorMod(weekdayFromMonday-startFromMonday, 7)
}

// GridCells returns the total cell count of a month grid: the leading
// offset plus the days of the month. Callers round up to full weeks.
func GridCells(year, month int, weekStart WeekStart) int {
	return FirstDayOffset(year, month, weekStart) + DaysInMonth(year, month)
}

// MonthDelta returns the signed number of months from one date's month
// to another's, ignoring the day of month.
func MonthDelta(from, to Date) int {
	return (to.Year-from.Year)*12 + (to.Month - from.Month)
}

// AddMonths returns the month-truncated date n months after d.
// Negative n moves backwards, with year carry using floor semantics.
func AddMonths(d Date, n int) Date {
	months := d.Year*12 + (d.Month - 1) + n
	return Date{
		Year:  floorDiv(months, 12),
		Month: floorMod(months, 12) + 1,
		Day:   1,
	}
}

// ClampDay returns day limited to the length of the given month,
// and to at least 1.
func ClampDay(year, month, day int) int {
	if day < 1 {
		return 1
	}
	if last := DaysInMonth(year, month); day > last {
		return last
	}
	return day
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns the remainder of floorDiv, always in [0,b).
func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
