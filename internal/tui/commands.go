package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rango/internal/calendar"
	"github.com/javiermolinar/rango/internal/pick"
)

// dayChangedMsg fires at local midnight to refresh the "today" mark.
// The generation token discards ticks scheduled before a refresh.
type dayChangedMsg struct {
	gen   int
	today calendar.Date
}

// pickSavedMsg reports a successful save of a confirmed range.
type pickSavedMsg struct {
	id int64
}

// errMsg wraps an error from an async command.
type errMsg struct {
	err error
}

// scheduleMidnightRefresh returns a one-shot command that fires at the
// next local midnight. The handler reschedules it, so the refresh
// repeats daily for the picker's lifetime and dies with the program.
func scheduleMidnightRefresh(gen int, now func() time.Time) tea.Cmd {
	return tea.Tick(calendar.UntilMidnight(now()), func(time.Time) tea.Msg {
		return dayChangedMsg{gen: gen, today: calendar.Today()}
	})
}

// savePick persists a confirmed range in the background.
func savePick(repo pick.Repository, p *pick.Pick) tea.Cmd {
	return func() tea.Msg {
		if err := repo.SavePick(context.Background(), p); err != nil {
			return errMsg{err: err}
		}
		return pickSavedMsg{id: p.ID}
	}
}
