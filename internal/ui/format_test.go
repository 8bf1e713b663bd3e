package ui

import (
	"testing"

	"github.com/javiermolinar/rango/internal/calendar"
	"github.com/javiermolinar/rango/internal/config"
)

func TestFormatDays(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{name: "single day", n: 1, want: "1 day"},
		{name: "several days", n: 5, want: "5 days"},
		{name: "zero", n: 0, want: "0 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDays(tt.n); got != tt.want {
				t.Errorf("FormatDays(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestDayFilterBlocksConfiguredDays(t *testing.T) {
	cfg := config.Default()
	cfg.Picker.FirstDate = "2026-01-01"
	cfg.Picker.LastDate = "2026-12-31"
	cfg.Picker.BlockedWeekdays = []string{"saturday", "sunday"}
	cfg.Picker.BlockedDates = []string{"2026-05-01"}

	p, err := pickerFromConfig(cfg)
	if err != nil {
		t.Fatalf("pickerFromConfig failed: %v", err)
	}

	tests := []struct {
		name string
		day  calendar.Date
		want bool
	}{
		{name: "weekday", day: calendar.NewDate(2026, 5, 4), want: true},
		{name: "blocked saturday", day: calendar.NewDate(2026, 5, 2), want: false},
		{name: "blocked sunday", day: calendar.NewDate(2026, 5, 3), want: false},
		{name: "blocked date", day: calendar.NewDate(2026, 5, 1), want: false},
		{name: "outside bounds", day: calendar.NewDate(2025, 12, 31), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Selectable(tt.day); got != tt.want {
				t.Errorf("Selectable(%v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestDayFilterNilWhenNothingBlocked(t *testing.T) {
	cfg := config.Default()
	if f := dayFilter(cfg); f != nil {
		t.Error("dayFilter should be nil when the config blocks nothing")
	}
}
