// Package pager tracks which month page of a bounded date picker is
// displayed. It owns only the page position; selection state lives in
// the selection package.
package pager

import (
	"github.com/javiermolinar/rango/internal/calendar"
	"github.com/javiermolinar/rango/internal/selection"
)

// Pager is a cursor over the linear sequence of months spanned by the
// picker bounds. Page 0 is the first bound's month.
type Pager struct {
	firstMonth calendar.Date // month-truncated first bound
	count      int
	page       int
}

// New creates a Pager over the months of the given bounds, positioned
// on the first page.
func New(bounds selection.Bounds) *Pager {
	return &Pager{
		firstMonth: bounds.First().MonthStart(),
		count:      bounds.MonthCount(),
	}
}

// Page returns the current page index.
func (p *Pager) Page() int { return p.page }

// Count returns the total number of month pages.
func (p *Pager) Count() int { return p.count }

// MonthForPage returns the month-truncated date of the given page.
func (p *Pager) MonthForPage(page int) calendar.Date {
	return calendar.AddMonths(p.firstMonth, page)
}

// Current returns the month of the current page.
func (p *Pager) Current() calendar.Date {
	return p.MonthForPage(p.page)
}

// Previous returns the month before the current page, and false on the
// first page. Used to render and enable the back chevron.
func (p *Pager) Previous() (calendar.Date, bool) {
	if p.IsFirst() {
		return calendar.Date{}, false
	}
	return p.MonthForPage(p.page - 1), true
}

// Next returns the month after the current page, and false on the
// last page.
func (p *Pager) Next() (calendar.Date, bool) {
	if p.IsLast() {
		return calendar.Date{}, false
	}
	return p.MonthForPage(p.page + 1), true
}

// IsFirst reports whether the cursor is on the first page.
func (p *Pager) IsFirst() bool { return p.page <= 0 }

// IsLast reports whether the cursor is on the last page.
func (p *Pager) IsLast() bool { return p.page >= p.count-1 }

// Advance moves one page forward. At the last page it is a no-op.
func (p *Pager) Advance() {
	if !p.IsLast() {
		p.page++
	}
}

// Retreat moves one page back. At the first page it is a no-op.
func (p *Pager) Retreat() {
	if !p.IsFirst() {
		p.page--
	}
}

// Settle positions the cursor on the given page index, clamped into
// the valid page range. Used when a swipe or jump lands on a page.
func (p *Pager) Settle(page int) {
	if page < 0 {
		page = 0
	}
	if page > p.count-1 {
		page = p.count - 1
	}
	p.page = page
}

// PageFor returns the clamped page index of the month containing d.
func (p *Pager) PageFor(d calendar.Date) int {
	page := calendar.MonthDelta(p.firstMonth, d)
	if page < 0 {
		return 0
	}
	if page > p.count-1 {
		return p.count - 1
	}
	return page
}

// JumpTo settles the cursor on the page showing d's month.
func (p *Pager) JumpTo(d calendar.Date) {
	p.Settle(p.PageFor(d))
}

// InitialFor positions the cursor for an initial selection: the page
// of the range's end when one is chosen, else of its start.
func (p *Pager) InitialFor(r selection.Range, ok bool) {
	if !ok {
		p.Settle(0)
		return
	}
	target := r.Start()
	if end, closed := r.End(); closed {
		target = end
	}
	p.JumpTo(target)
}
