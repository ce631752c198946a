package pagination

import (
	"strconv"
	"strings"
)

// PageLink is one entry of the page window.
type PageLink struct {
	URL    string
	Page   int
	Active bool
}

// NavLink is the target of a next or previous control.
type NavLink struct {
	URL  string
	Page int
}

// Summary gathers every read operation of a Paginator into one value.
// Next and Prev are nil when there is no such page.
type Summary struct {
	Page       int
	Limit      int
	Offset     int
	TotalRows  int
	TotalPages int
	WindowSize int
	Pages      []PageLink
	Next       *NavLink
	Prev       *NavLink
}

// Link replaces every {page} token in template with page.
// Nothing else in the template is touched, and nothing is URL-encoded.
func Link(template string, page int) string {
	return strings.ReplaceAll(template, PagePlaceholder, strconv.Itoa(page))
}

// Window returns the pages shown around the current page in ascending order.
// Half of the window goes before the current page and the rest after it.
// Near the first page the unused "before" slots move to the "after" side.
// Pages past TotalPages are not trimmed.
func (p Paginator) Window() []PageLink {
	half := p.windowSize / 2

	before := half
	if half > p.page {
		before = half - (half - p.page)
	}
	// never step below page 1
	if before > p.page-1 {
		before = p.page - 1
	}
	if before < 0 {
		before = 0
	}
	after := p.windowSize - before

	pages := make([]PageLink, 0, before+1+max(after, 0))
	for i := before; i > 0; i-- {
		pages = append(pages, p.pageLink(p.page-i, false))
	}
	pages = append(pages, p.pageLink(p.page, true))
	for i := 1; i <= after; i++ {
		pages = append(pages, p.pageLink(p.page+i, false))
	}
	return pages
}

// Next returns the page after the current one, if there is one.
func (p Paginator) Next() (NavLink, bool) {
	total := p.TotalPages()
	if p.page < total && total > 1 {
		return p.navLink(p.page + 1), true
	}
	return NavLink{}, false
}

// Prev returns the page before the current one, if there is one.
func (p Paginator) Prev() (NavLink, bool) {
	if p.page > 1 {
		return p.navLink(p.page - 1), true
	}
	return NavLink{}, false
}

// Summarize evaluates the window and both navigation targets at once.
func (p Paginator) Summarize() Summary {
	s := Summary{
		Page:       p.page,
		Limit:      p.perPageLimit,
		Offset:     p.Offset(),
		TotalRows:  p.totalRow,
		TotalPages: p.TotalPages(),
		WindowSize: p.windowSize,
		Pages:      p.Window(),
	}
	if next, ok := p.Next(); ok {
		s.Next = &next
	}
	if prev, ok := p.Prev(); ok {
		s.Prev = &prev
	}
	return s
}

func (p Paginator) pageLink(page int, active bool) PageLink {
	return PageLink{URL: Link(p.linkTemplate, page), Page: page, Active: active}
}

func (p Paginator) navLink(page int) NavLink {
	return NavLink{URL: Link(p.linkTemplate, page), Page: page}
}
