// Package selection implements the two-phase date-range selection state
// machine and its selectable-universe bounds.
package selection

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/rango/internal/calendar"
)

// Configuration errors, reported at construction time.
var (
	ErrInvertedBounds = errors.New("first date must not be after last date")
	ErrOutOfBounds    = errors.New("date is outside the selectable bounds")
	ErrInvertedRange  = errors.New("range end must not be before its start")
)

// DayFilter reports whether a date may be selected. A nil filter
// allows every date inside the bounds.
type DayFilter func(calendar.Date) bool

// Bounds is the immutable selectable universe of a picker.
// It is set once at construction and never mutated.
type Bounds struct {
	first calendar.Date
	last  calendar.Date
}

// NewBounds creates Bounds, rejecting an inverted pair.
func NewBounds(first, last calendar.Date) (Bounds, error) {
	if first.After(last) {
		return Bounds{}, fmt.Errorf("%w: %s > %s", ErrInvertedBounds, first, last)
	}
	return Bounds{first: first, last: last}, nil
}

// First returns the earliest selectable date.
func (b Bounds) First() calendar.Date { return b.first }

// Last returns the latest selectable date.
func (b Bounds) Last() calendar.Date { return b.last }

// Contains reports whether d falls inside the bounds, inclusive.
func (b Bounds) Contains(d calendar.Date) bool {
	return !d.Before(b.first) && !d.After(b.last)
}

// MonthCount returns the number of calendar months the bounds span,
// inclusive of both end months.
func (b Bounds) MonthCount() int {
	return calendar.MonthDelta(b.first, b.last) + 1
}

// Years returns every year of the bounds, first to last inclusive.
func (b Bounds) Years() []int {
	years := make([]int, 0, b.last.Year-b.first.Year+1)
	for y := b.first.Year; y <= b.last.Year; y++ {
		years = append(years, y)
	}
	return years
}

// Clamp returns d limited to the bounds.
func (b Bounds) Clamp(d calendar.Date) calendar.Date {
	if d.Before(b.first) {
		return b.first
	}
	if d.After(b.last) {
		return b.last
	}
	return d
}
