package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rango/internal/calendar"
	"github.com/javiermolinar/rango/internal/selection"
)

func TestViewShowsMonthTitle(t *testing.T) {
	m := newTestModel(t)
	out := m.View()

	if !strings.Contains(out, "June 2020") {
		t.Error("view should contain the current month title")
	}
	if !strings.Contains(out, "Mo") {
		t.Error("view should contain weekday labels")
	}
}

func TestViewHeaderNeighbours(t *testing.T) {
	m := newTestModel(t)
	out := m.View()

	if !strings.Contains(out, "May") || !strings.Contains(out, "Jul") {
		t.Error("header should label the neighbouring months")
	}
}

func TestViewYearMode(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, keyRune('y'))
	out := m.View()

	if !strings.Contains(out, "2020") || !strings.Contains(out, "2021") {
		t.Error("year list should show every year of the bounds")
	}
}

func TestViewNotePrompt(t *testing.T) {
	m := newTestModel(t, selection.WithInitialRange(
		selection.Closed(calendar.NewDate(2020, 6, 10), calendar.NewDate(2020, 6, 18))))
	m.mode = ModeNote
	out := m.View()

	if !strings.Contains(out, "Note:") {
		t.Error("note mode should render the note prompt")
	}
}

func TestSelectionSummary(t *testing.T) {
	tests := []struct {
		name string
		opts []selection.PickerOption
		want string
	}{
		{name: "empty", want: "No dates selected"},
		{
			name: "open",
			opts: []selection.PickerOption{
				selection.WithInitialRange(selection.Open(calendar.NewDate(2020, 6, 18))),
			},
			want: "2020-06-18 → … (pick an end date)",
		},
		{
			name: "closed",
			opts: []selection.PickerOption{
				selection.WithInitialRange(
					selection.Closed(calendar.NewDate(2020, 6, 10), calendar.NewDate(2020, 6, 18))),
			},
			want: "2020-06-10 → 2020-06-18 (9 days)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, tt.opts...)
			if got := m.selectionSummary(); got != tt.want {
				t.Errorf("selectionSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHelpLineTruncation(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 24})
	m = updated.(Model)

	out := m.renderFooter()
	if !strings.Contains(out, "…") {
		t.Error("narrow footer should truncate the help line")
	}
}

func TestViewMarksEndpointsAndRange(t *testing.T) {
	m := newTestModel(t, selection.WithInitialRange(
		selection.Closed(calendar.NewDate(2020, 6, 10), calendar.NewDate(2020, 6, 18))))

	// The grid renders every day of the month once.
	out := m.renderMonthGrid()
	for _, day := range []string{"1", "15", "30"} {
		if !strings.Contains(out, day) {
			t.Errorf("month grid missing day %s", day)
		}
	}
}
