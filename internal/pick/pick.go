// Package pick defines confirmed date-range records and their storage
// contract.
package pick

import (
	"context"
	"errors"
	"time"

	"github.com/javiermolinar/rango/internal/calendar"
)

// Domain errors.
var (
	ErrEmptySelection = errors.New("nothing selected to save")
	ErrInvertedPick   = errors.New("pick end must not be before its start")
)

// Pick is a confirmed date range. Single-day picks have Start == End.
type Pick struct {
	ID        int64
	Start     calendar.Date
	End       calendar.Date
	Note      string
	CreatedAt time.Time
}

// FromDates builds a Pick from a confirmed selection as returned by
// the picker: one date for a single day, two for a range. An empty
// selection is an error.
func FromDates(dates []calendar.Date, note string) (*Pick, error) {
	switch len(dates) {
	case 1:
		return &Pick{Start: dates[0], End: dates[0], Note: note}, nil
	case 2:
		if dates[1].Before(dates[0]) {
			return nil, ErrInvertedPick
		}
		return &Pick{Start: dates[0], End: dates[1], Note: note}, nil
	default:
		return nil, ErrEmptySelection
	}
}

// IsSingleDay reports whether the pick covers exactly one day.
func (p *Pick) IsSingleDay() bool {
	return p.Start == p.End
}

// Days returns the inclusive day count of the pick.
func (p *Pick) Days() int {
	span := p.End.Time(time.UTC).Sub(p.Start.Time(time.UTC))
	return int(span.Hours()/24) + 1
}

// Repository defines the storage interface for picks.
type Repository interface {
	// SavePick stores a new pick and sets its ID.
	SavePick(ctx context.Context, p *Pick) error

	// GetPick retrieves a pick by ID, or nil if not found.
	GetPick(ctx context.Context, id int64) (*Pick, error)

	// ListPicks returns saved picks, newest first. A limit of 0 means
	// no limit.
	ListPicks(ctx context.Context, limit int) ([]*Pick, error)

	// DeletePick removes a pick by ID.
	DeletePick(ctx context.Context, id int64) error

	// ClearPicks removes every saved pick and returns the count.
	ClearPicks(ctx context.Context) (int64, error)

	// Close releases any resources held by the repository.
	Close() error
}
