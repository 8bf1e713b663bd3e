// Package tui provides the terminal user interface for rango.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rango/internal/calendar"
	"github.com/javiermolinar/rango/internal/config"
	"github.com/javiermolinar/rango/internal/pager"
	"github.com/javiermolinar/rango/internal/pick"
	"github.com/javiermolinar/rango/internal/selection"
	"github.com/javiermolinar/rango/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeCalendar Mode = iota
	ModeYear          // Year list replaces the month grid
	ModeNote          // Note prompt before saving a confirmed range
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   pick.Repository // nil disables persistence
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Selection core
	picker    *selection.Picker
	pager     *pager.Pager
	weekStart calendar.WeekStart

	// State
	mode       Mode
	cursor     calendar.Date // day cell under the cursor
	today      calendar.Date
	yearCursor int // index into bounds.Years() while in year mode
	refreshGen int // guards stale midnight ticks

	// Confirm state
	note      textinput.Model
	confirmed []calendar.Date // set once the pick is accepted
	savedID   int64

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg string
	err       error
}

// New creates a new TUI model. The initial page shows the month of the
// selection's end date, its start date when no end is chosen, or the
// first selectable month.
func New(repo pick.Repository, cfg *config.Config, p *selection.Picker) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	note := textinput.New()
	note.Placeholder = "optional note"
	note.CharLimit = 128
	note.Width = 32
	note.PromptStyle = styles.PromptLabelStyle
	note.TextStyle = styles.PromptInputStyle
	note.Cursor.Style = styles.PromptCursorStyle

	pg := pager.New(p.Bounds())
	r, ok := p.Range()
	pg.InitialFor(r, ok)

	today := calendar.Today()
	cursor := initialCursor(p, pg, today)

	return &Model{
		repo:      repo,
		config:    cfg,
		theme:     t,
		styles:    styles,
		picker:    p,
		pager:     pg,
		weekStart: cfg.WeekStart(),
		mode:      ModeCalendar,
		cursor:    cursor,
		today:     today,
		note:      note,
	}
}

// initialCursor places the cursor on the selection start, today, or
// the first day of the displayed month, whichever applies first.
func initialCursor(p *selection.Picker, pg *pager.Pager, today calendar.Date) calendar.Date {
	if r, ok := p.Range(); ok {
		if end, closed := r.End(); closed {
			return end
		}
		return r.Start()
	}
	month := pg.Current()
	if today.Year == month.Year && today.Month == month.Month {
		return today
	}
	return p.Bounds().Clamp(month)
}

// Init schedules the first midnight "today" refresh.
func (m Model) Init() tea.Cmd {
	return scheduleMidnightRefresh(m.refreshGen, time.Now)
}

// Confirmed returns the accepted selection, empty when the picker was
// dismissed without confirming.
func (m Model) Confirmed() []calendar.Date {
	return m.confirmed
}

// Note returns the note typed at confirmation time.
func (m Model) Note() string {
	return m.note.Value()
}

// Run starts the TUI and returns the confirmed selection, which is
// empty if the user quit without confirming.
func Run(repo pick.Repository, cfg *config.Config, p *selection.Picker) ([]calendar.Date, error) {
	return RunWithDebug(repo, cfg, p, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo pick.Repository, cfg *config.Config, p *selection.Picker, debug bool) ([]calendar.Date, error) {
	if err := InitDebugLogger(debug); err != nil {
		return nil, err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg, p)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := prog.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.Confirmed(), nil
	}
	return nil, nil
}
