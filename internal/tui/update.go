package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dayChangedMsg:
		// A stale tick from before a refresh carries an old generation.
		if msg.gen != m.refreshGen {
			return m, nil
		}
		m.today = msg.today
		return m, scheduleMidnightRefresh(m.refreshGen, time.Now)

	case pickSavedMsg:
		m.savedID = msg.id
		m.confirmed = m.picker.Confirm()
		return m, tea.Quit

	case errMsg:
		m.err = msg.err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		m.mode = ModeCalendar
		m.note.Blur()
		return m, nil
	}

	return m, nil
}
