package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rango/internal/calendar"
	"github.com/javiermolinar/rango/internal/pick"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeYear:
		return m.handleYearKeys(msg)
	case ModeNote:
		return m.handleNoteKeys(msg)
	default:
		return m.handleCalendarKeys(msg)
	}
}

// handleCalendarKeys handles keys in the month grid.
func (m Model) handleCalendarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Day navigation
	case "h", "left":
		m.moveCursor(-1)
	case "l", "right":
		m.moveCursor(1)
	case "j", "down":
		m.moveCursor(7)
	case "k", "up":
		m.moveCursor(-7)

	// Month pagination
	case "H", "shift+left", "pgup":
		m.movePage(-1)
	case "L", "shift+right", "pgdown":
		m.movePage(1)

	case "t":
		m.cursor = m.picker.Bounds().Clamp(m.today)
		m.pager.JumpTo(m.cursor)

	// Year list
	case "y":
		m.mode = ModeYear
		m.yearCursor = m.yearIndexFor(m.cursor.Year)
		return m, nil

	// Selection
	case "enter", " ":
		if !m.picker.Selectable(m.cursor) {
			m.statusMsg = "Day is not selectable"
			return m, nil
		}
		r := m.picker.TapDay(m.cursor)
		LogRangeChange(r)
		if r.IsClosed() {
			m.statusMsg = fmt.Sprintf("Selected %s (%d days). c to confirm", r, r.Days())
		} else {
			m.statusMsg = "Start chosen, pick an end date"
		}
		return m, nil

	case "esc":
		if _, ok := m.picker.Range(); ok {
			m.picker.Clear()
			m.statusMsg = "Selection cleared"
		}
		return m, nil

	case "Y":
		r, ok := m.picker.Range()
		if !ok {
			m.statusMsg = "Nothing to copy"
			return m, nil
		}
		if err := clipboard.WriteAll(r.String()); err != nil {
			m.statusMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.statusMsg = "Copied " + r.String()
		return m, nil

	// Confirm
	case "c":
		if _, ok := m.picker.Range(); !ok {
			m.statusMsg = "Nothing selected yet"
			return m, nil
		}
		if m.repo == nil {
			m.confirmed = m.picker.Confirm()
			return m, tea.Quit
		}
		m.mode = ModeNote
		m.note.SetValue("")
		m.note.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

// handleYearKeys handles keys in the year list.
func (m Model) handleYearKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	years := m.picker.Bounds().Years()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc", "y":
		m.mode = ModeCalendar
		return m, nil

	case "h", "left":
		if m.yearCursor > 0 {
			m.yearCursor--
		}
	case "l", "right":
		if m.yearCursor < len(years)-1 {
			m.yearCursor++
		}
	case "k", "up":
		if m.yearCursor-yearCols >= 0 {
			m.yearCursor -= yearCols
		}
	case "j", "down":
		if m.yearCursor+yearCols <= len(years)-1 {
			m.yearCursor += yearCols
		}

	case "enter", " ":
		// Year selection always reopens the range at a relocated
		// start, even over a completed range.
		r := m.picker.SelectYear(years[m.yearCursor])
		LogRangeChange(r)
		m.cursor = r.Start()
		m.pager.JumpTo(m.cursor)
		m.mode = ModeCalendar
		m.statusMsg = fmt.Sprintf("Start moved to %s, pick an end date", r.Start())
		return m, nil
	}

	return m, nil
}

// handleNoteKeys handles keys in the note prompt shown on confirm.
func (m Model) handleNoteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Confirm without saving to history.
		m.confirmed = m.picker.Confirm()
		return m, tea.Quit

	case "enter":
		p, err := pick.FromDates(m.picker.Confirm(), m.note.Value())
		if err != nil {
			m.err = err
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			m.mode = ModeCalendar
			m.note.Blur()
			return m, nil
		}
		return m, savePick(m.repo, p)
	}

	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	return m, cmd
}

// moveCursor moves the day cursor by a number of days, clamped to the
// bounds, and pages the calendar when the cursor crosses a month edge.
func (m *Model) moveCursor(days int) {
	next := calendar.FromTime(m.cursor.Time(time.UTC).AddDate(0, 0, days))
	next = m.picker.Bounds().Clamp(next)
	m.cursor = next
	m.pager.JumpTo(next)
}

// movePage turns the month page and drags the cursor into the newly
// shown month, keeping the day of month where possible.
func (m *Model) movePage(delta int) {
	if delta > 0 {
		m.pager.Advance()
	} else {
		m.pager.Retreat()
	}
	month := m.pager.Current()
	day := calendar.ClampDay(month.Year, month.Month, m.cursor.Day)
	m.cursor = m.picker.Bounds().Clamp(calendar.NewDate(month.Year, month.Month, day))
}

// yearIndexFor returns the year-list index of the given year, clamped
// into the list.
func (m Model) yearIndexFor(year int) int {
	years := m.picker.Bounds().Years()
	idx := year - years[0]
	if idx < 0 {
		return 0
	}
	if idx > len(years)-1 {
		return len(years) - 1
	}
	return idx
}
