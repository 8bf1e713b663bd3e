package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/rango/internal/calendar"
)

// Years rendered per row in the year list.
const yearCols = 4

// View renders the TUI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.TitleStyle.Render("rango"))
	b.WriteString("\n\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.mode == ModeYear {
		b.WriteString(m.renderYearList())
	} else {
		b.WriteString(m.renderMonthGrid())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the month header with pagination chevrons and
// the neighbouring month labels.
func (m Model) renderHeader() string {
	current := m.pager.Current()
	title := m.styles.MonthHeaderStyle.Render(monthTitle(current))

	left := m.styles.ChevronDisabledStyle.Render("‹")
	prevLabel := m.styles.AdjacentMonthStyle.Render("   ")
	if prev, ok := m.pager.Previous(); ok {
		left = m.styles.ChevronStyle.Render("‹")
		prevLabel = m.styles.AdjacentMonthStyle.Render(monthAbbrev(prev))
	}

	right := m.styles.ChevronDisabledStyle.Render("›")
	nextLabel := m.styles.AdjacentMonthStyle.Render("   ")
	if next, ok := m.pager.Next(); ok {
		right = m.styles.ChevronStyle.Render("›")
		nextLabel = m.styles.AdjacentMonthStyle.Render(monthAbbrev(next))
	}

	return fmt.Sprintf("%s %s   %s   %s %s", left, prevLabel, title, nextLabel, right)
}

// renderMonthGrid renders the current month as a week-aligned grid of
// day cells.
func (m Model) renderMonthGrid() string {
	month := m.pager.Current()
	offset := calendar.FirstDayOffset(month.Year, month.Month, m.weekStart)
	days := calendar.DaysInMonth(month.Year, month.Month)

	var b strings.Builder

	// Weekday labels
	for _, label := range m.weekStart.ColumnLabels() {
		b.WriteString(m.styles.WeekdayHeaderStyle.Render(label))
	}
	b.WriteString("\n")

	col := 0
	for i := 0; i < offset; i++ {
		b.WriteString(m.styles.DayBlankStyle.Render(""))
		col++
	}

	for day := 1; day <= days; day++ {
		d := calendar.NewDate(month.Year, month.Month, day)
		b.WriteString(m.renderDayCell(d))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	return b.String()
}

// renderDayCell styles a single day. Cursor wins over endpoints, which
// win over the in-range shade, today's mark, and the disabled state.
func (m Model) renderDayCell(d calendar.Date) string {
	label := fmt.Sprintf("%d", d.Day)

	r, hasRange := m.picker.Range()
	switch {
	case d == m.cursor:
		return m.styles.DayCursorStyle.Render(label)
	case hasRange && r.IsEndpoint(d):
		return m.styles.DayEndpointStyle.Render(label)
	case hasRange && r.Contains(d):
		return m.styles.DayInRangeStyle.Render(label)
	case d == m.today:
		return m.styles.DayTodayStyle.Render(label)
	case !m.picker.Selectable(d):
		return m.styles.DayDisabledStyle.Render(label)
	default:
		return m.styles.DayStyle.Render(label)
	}
}

// renderYearList renders the flat year list of the bounds.
func (m Model) renderYearList() string {
	years := m.picker.Bounds().Years()

	selectedYear := -1
	if r, ok := m.picker.Range(); ok {
		selectedYear = r.Start().Year
	}

	var b strings.Builder
	for i, year := range years {
		label := fmt.Sprintf("%d", year)
		switch {
		case i == m.yearCursor:
			b.WriteString(m.styles.YearCursorStyle.Render(label))
		case year == selectedYear:
			b.WriteString(m.styles.YearSelectedStyle.Render(label))
		default:
			b.WriteString(m.styles.YearStyle.Render(label))
		}
		if (i+1)%yearCols == 0 {
			b.WriteString("\n")
		}
	}
	if len(years)%yearCols != 0 {
		b.WriteString("\n")
	}

	return b.String()
}

// renderFooter renders the selection summary, status line and help.
func (m Model) renderFooter() string {
	var lines []string

	if m.mode == ModeNote {
		prompt := lipgloss.JoinHorizontal(lipgloss.Left,
			m.styles.PromptLabelStyle.Render("Note: "),
			m.note.View(),
		)
		lines = append(lines, prompt,
			m.styles.HelpStyle.Render("enter save · esc confirm without saving"))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, m.styles.SelectionStyle.Render(m.selectionSummary()))

	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if m.err != nil {
			style = m.styles.ErrorStyle
		}
		lines = append(lines, style.Render(m.statusMsg))
	}

	help := m.helpLine()
	if m.width > 0 {
		help = ansi.Truncate(help, m.width, "…")
	}
	lines = append(lines, m.styles.HelpStyle.Render(help))

	return strings.Join(lines, "\n")
}

// selectionSummary describes the current selection state.
func (m Model) selectionSummary() string {
	r, ok := m.picker.Range()
	if !ok {
		return "No dates selected"
	}
	if end, closed := r.End(); closed {
		return fmt.Sprintf("%s → %s (%d days)", r.Start(), end, r.Days())
	}
	return fmt.Sprintf("%s → … (pick an end date)", r.Start())
}

func (m Model) helpLine() string {
	if m.mode == ModeYear {
		return "hjkl move · enter pick year · esc back · q quit"
	}
	return "hjkl move · H/L month · enter select · y year · t today · c confirm · esc clear · q quit"
}

// monthTitle formats a month-truncated date as "June 2020".
func monthTitle(d calendar.Date) string {
	return d.Time(time.UTC).Format("January 2006")
}

// monthAbbrev formats a month-truncated date as "Jun".
func monthAbbrev(d calendar.Date) string {
	return d.Time(time.UTC).Format("Jan")
}
