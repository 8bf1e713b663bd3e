package pick

import (
	"errors"
	"testing"

	"github.com/javiermolinar/rango/internal/calendar"
)

func TestFromDates(t *testing.T) {
	tests := []struct {
		name      string
		dates     []calendar.Date
		wantStart calendar.Date
		wantEnd   calendar.Date
		wantErr   error
	}{
		{
			name:      "single day",
			dates:     []calendar.Date{calendar.NewDate(2020, 6, 18)},
			wantStart: calendar.NewDate(2020, 6, 18),
			wantEnd:   calendar.NewDate(2020, 6, 18),
		},
		{
			name:      "range",
			dates:     []calendar.Date{calendar.NewDate(2020, 6, 10), calendar.NewDate(2020, 6, 18)},
			wantStart: calendar.NewDate(2020, 6, 10),
			wantEnd:   calendar.NewDate(2020, 6, 18),
		},
		{
			name:    "empty",
			dates:   nil,
			wantErr: ErrEmptySelection,
		},
		{
			name:    "inverted",
			dates:   []calendar.Date{calendar.NewDate(2020, 6, 18), calendar.NewDate(2020, 6, 10)},
			wantErr: ErrInvertedPick,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromDates(tt.dates, "")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FromDates error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromDates unexpected error: %v", err)
			}
			if got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Errorf("FromDates = %v..%v, want %v..%v", got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestPickDays(t *testing.T) {
	tests := []struct {
		name string
		p    Pick
		want int
	}{
		{
			name: "single day",
			p:    Pick{Start: calendar.NewDate(2020, 6, 18), End: calendar.NewDate(2020, 6, 18)},
			want: 1,
		},
		{
			name: "nine days",
			p:    Pick{Start: calendar.NewDate(2020, 6, 10), End: calendar.NewDate(2020, 6, 18)},
			want: 9,
		},
		{
			name: "across months",
			p:    Pick{Start: calendar.NewDate(2020, 1, 30), End: calendar.NewDate(2020, 2, 2)},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Days(); got != tt.want {
				t.Errorf("Days() = %d, want %d", got, tt.want)
			}
		})
	}
}
