package selection

import (
	"fmt"

	"github.com/javiermolinar/rango/internal/calendar"
)

// Picker owns the range-selection state. It is the single owner of the
// current Range; all mutation happens through TapDay and SelectYear on
// the event-processing goroutine.
type Picker struct {
	bounds Bounds
	filter DayFilter
	sel    *Range // nil until anything has been selected
}

// PickerOption configures optional picker behavior.
type PickerOption func(*Picker)

// WithFilter restricts selectable days beyond the bounds.
func WithFilter(f DayFilter) PickerOption {
	return func(p *Picker) { p.filter = f }
}

// WithInitialRange seeds the picker with a pre-existing selection.
// The range is validated by NewPicker.
func WithInitialRange(r Range) PickerOption {
	return func(p *Picker) {
		seeded := r
		p.sel = &seeded
	}
}

// NewPicker creates a Picker over the given bounds. An initial range
// outside the bounds, or with end before start, rejects construction.
func NewPicker(bounds Bounds, opts ...PickerOption) (*Picker, error) {
	p := &Picker{bounds: bounds}
	for _, opt := range opts {
		opt(p)
	}

	if p.sel != nil {
		if !bounds.Contains(p.sel.start) {
			return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, p.sel.start)
		}
		if end, ok := p.sel.End(); ok {
			if !bounds.Contains(end) {
				return nil, fmt.Errorf("%w: end %s", ErrOutOfBounds, end)
			}
			if end.Before(p.sel.start) {
				return nil, fmt.Errorf("%w: %s < %s", ErrInvertedRange, end, p.sel.start)
			}
		}
	}

	return p, nil
}

// Bounds returns the picker's selectable universe.
func (p *Picker) Bounds() Bounds { return p.bounds }

// Selectable reports whether a day may be tapped: inside the bounds
// and passing the day filter. The presentation layer must consult this
// before forwarding taps; TapDay does not re-validate.
func (p *Picker) Selectable(d calendar.Date) bool {
	if !p.bounds.Contains(d) {
		return false
	}
	return p.filter == nil || p.filter(d)
}

// Range returns the current selection, if any.
func (p *Picker) Range() (Range, bool) {
	if p.sel == nil {
		return Range{}, false
	}
	return *p.sel, true
}

// TapDay feeds a day-tap event into the state machine and returns the
// next range state.
//
// With a Closed selection (or none), the tap starts a fresh Open range
// at the tapped date, discarding any previous range. With an Open
// selection the tap completes it: a tap on or before the start makes
// the tapped date the new start and the old start the end, otherwise
// the tapped date becomes the end. A tap exactly on the start yields a
// zero-length Closed range.
func (p *Picker) TapDay(d calendar.Date) Range {
	if p.sel == nil || p.sel.IsClosed() {
		next := Open(d)
		p.sel = &next
		return next
	}

	var next Range
	if d.After(p.sel.start) {
		next = Closed(p.sel.start, d)
	} else {
		next = Closed(d, p.sel.start)
	}
	p.sel = &next
	return next
}

// SelectYear relocates the selection's start date to the given year,
// keeping its month and clearing any chosen end: year selection always
// reopens the state machine, even over a completed range. The day of
// month is clamped to the target month's length, and the relocated
// start is clamped into the bounds.
func (p *Picker) SelectYear(year int) Range {
	base := p.bounds.first
	if p.sel != nil {
		base = p.sel.start
	}

	moved := calendar.NewDate(year, base.Month, calendar.ClampDay(year, base.Month, base.Day))
	next := Open(p.bounds.Clamp(moved))
	p.sel = &next
	return next
}

// Confirm returns the final ordered selection: empty if nothing was
// ever selected, one date for an Open range, start and end for a
// Closed one.
func (p *Picker) Confirm() []calendar.Date {
	switch {
	case p.sel == nil:
		return nil
	case p.sel.IsClosed():
		return []calendar.Date{p.sel.start, p.sel.end}
	default:
		return []calendar.Date{p.sel.start}
	}
}

// Clear discards the current selection.
func (p *Picker) Clear() {
	p.sel = nil
}
