package ui

import (
	"fmt"

	"github.com/javiermolinar/rango/internal/pick"
)

// FormatDays formats an inclusive day count.
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// maxNoteWidth returns how many note characters fit in a list row.
func maxNoteWidth() int {
	// Base: "  #NNNN  YYYY-MM-DD .. YYYY-MM-DD  (NNN days)  " = ~48 chars,
	// plus the trailing timestamp.
	overhead := 48 + 18
	available := termWidth() - overhead
	if available < 12 {
		return 12
	}
	return available
}

// printPickRow prints a single pick row with consistent formatting.
func printPickRow(p *pick.Pick, noteWidth int) {
	dates := p.Start.String()
	if !p.IsSingleDay() {
		dates = fmt.Sprintf("%s .. %s", p.Start, p.End)
	}

	note := p.Note
	if len(note) > noteWidth {
		note = note[:noteWidth-3] + "..."
	}

	// Pad before coloring: ANSI codes would defeat %-*s widths.
	fmt.Printf("  %s  %s  %s  %-*s  %s\n",
		formatMuted(fmt.Sprintf("#%-4d", p.ID)),
		formatRange(fmt.Sprintf("%-24s", dates)),
		formatStats(fmt.Sprintf("%-10s", "("+FormatDays(p.Days())+")")),
		noteWidth, note,
		formatMuted(p.CreatedAt.Local().Format("2006-01-02 15:04")),
	)
}
