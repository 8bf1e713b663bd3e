package selection

import (
	"time"

	"github.com/javiermolinar/rango/internal/calendar"
)

// Range is a tagged date range: Open while only the start has been
// chosen, Closed once both endpoints are set. A Closed range always
// satisfies start <= end.
type Range struct {
	start  calendar.Date
	end    calendar.Date
	closed bool
}

// Open creates a range with only a start date.
func Open(start calendar.Date) Range {
	return Range{start: start}
}

// Closed creates a completed range. Callers must pass start <= end;
// the picker constructors validate external input.
func Closed(start, end calendar.Date) Range {
	return Range{start: start, end: end, closed: true}
}

// Start returns the first endpoint, always set.
func (r Range) Start() calendar.Date { return r.start }

// End returns the second endpoint and whether it is set.
func (r Range) End() (calendar.Date, bool) { return r.end, r.closed }

// IsClosed reports whether both endpoints are chosen.
func (r Range) IsClosed() bool { return r.closed }

// Contains reports whether d lies inside the range. An Open range
// contains only its start date.
func (r Range) Contains(d calendar.Date) bool {
	if !r.closed {
		return d == r.start
	}
	return !d.Before(r.start) && !d.After(r.end)
}

// IsEndpoint reports whether d is the start or the end of the range.
func (r Range) IsEndpoint(d calendar.Date) bool {
	return d == r.start || (r.closed && d == r.end)
}

// Days returns the inclusive day count of a Closed range, or 1 for an
// Open range.
func (r Range) Days() int {
	if !r.closed {
		return 1
	}
	span := r.end.Time(time.UTC).Sub(r.start.Time(time.UTC))
	return int(span.Hours()/24) + 1
}

// String formats the range for status lines.
func (r Range) String() string {
	if !r.closed {
		return r.start.String()
	}
	return r.start.String() + " .. " + r.end.String()
}
