package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rango/internal/tui/theme"
)

// Width of a single day cell, including its padding.
const dayCellWidth = 4

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorToday       lipgloss.Color
	colorWarning     lipgloss.Color

	// Title and month header
	TitleStyle           lipgloss.Style
	MonthHeaderStyle     lipgloss.Style
	AdjacentMonthStyle   lipgloss.Style
	ChevronStyle         lipgloss.Style
	ChevronDisabledStyle lipgloss.Style

	// Weekday column labels
	WeekdayHeaderStyle lipgloss.Style

	// Day cells
	DayStyle         lipgloss.Style
	DayDisabledStyle lipgloss.Style
	DayTodayStyle    lipgloss.Style
	DayInRangeStyle  lipgloss.Style
	DayEndpointStyle lipgloss.Style
	DayCursorStyle   lipgloss.Style
	DayBlankStyle    lipgloss.Style

	// Year list
	YearStyle         lipgloss.Style
	YearCursorStyle   lipgloss.Style
	YearSelectedStyle lipgloss.Style

	// Footer
	SelectionStyle lipgloss.Style
	StatusStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	HelpStyle      lipgloss.Style

	// Note prompt
	PromptLabelStyle  lipgloss.Style
	PromptInputStyle  lipgloss.Style
	PromptCursorStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:          theme.Color(t.Bg),
		colorBgHighlight: theme.Color(t.BgHighlight),
		colorBgSelection: theme.Color(t.BgSelection),
		colorFg:          theme.Color(t.Fg),
		colorFgMuted:     theme.Color(t.FgMuted),
		colorAccent:      theme.Color(t.Accent),
		colorToday:       theme.Color(t.Today),
		colorWarning:     theme.Color(t.Warning),
	}

	textOnAccent := theme.Color(t.TextOnAccent)
	chevron := theme.Color(t.Chevron)

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.MonthHeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Bold(true)

	s.AdjacentMonthStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.ChevronStyle = lipgloss.NewStyle().
		Foreground(chevron)

	s.ChevronDisabledStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.WeekdayHeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Width(dayCellWidth).
		Align(lipgloss.Center)

	day := lipgloss.NewStyle().
		Width(dayCellWidth).
		Align(lipgloss.Center)

	s.DayStyle = day.Foreground(s.colorFg)
	s.DayDisabledStyle = day.Foreground(s.colorFgMuted).Faint(true)
	s.DayTodayStyle = day.Foreground(s.colorToday).Bold(true)
	s.DayInRangeStyle = day.Foreground(s.colorFg).Background(s.colorBgHighlight)
	s.DayEndpointStyle = day.Foreground(textOnAccent).Background(s.colorAccent).Bold(true)
	s.DayCursorStyle = day.Foreground(s.colorFg).Background(s.colorBgSelection).Bold(true)
	s.DayBlankStyle = day.Foreground(s.colorBg)

	year := lipgloss.NewStyle().
		Width(6).
		Align(lipgloss.Center)

	s.YearStyle = year.Foreground(s.colorFg)
	s.YearCursorStyle = year.Foreground(textOnAccent).Background(s.colorAccent).Bold(true)
	s.YearSelectedStyle = year.Foreground(s.colorAccent).Bold(true)

	s.SelectionStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Italic(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.PromptLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.PromptInputStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.PromptCursorStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	return s
}
