// Package pagination computes page windows, next/previous links and rendered
// navigation markup from a current page, a total row count and a per-page limit.
// A Paginator is an immutable value; the With* builders return modified copies.
package pagination

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultPerPageLimit is used by New when perPageLimit is 0.
	DefaultPerPageLimit = 10
	// DefaultWindowSize is the number of page slots shown around the current page.
	DefaultWindowSize = 8
	// DefaultLinkTemplate is used by New when linkTemplate is empty.
	DefaultLinkTemplate = "?page={page}"
	// PagePlaceholder is the token substituted with a page number in link templates.
	PagePlaceholder = "{page}"
)

// Paginator holds the state of one pagination request.
type Paginator struct {
	page         int
	perPageLimit int
	totalRow     int
	windowSize   int
	linkTemplate string
}

// New builds a validated Paginator. Page is 1-indexed and is not checked
// against TotalPages. A zero perPageLimit or an empty linkTemplate select
// DefaultPerPageLimit and DefaultLinkTemplate.
func New(page, totalRow, perPageLimit int, linkTemplate string) (Paginator, error) {
	if perPageLimit == 0 {
		perPageLimit = DefaultPerPageLimit
	}
	if linkTemplate == "" {
		linkTemplate = DefaultLinkTemplate
	}
	p := Paginator{
		page:         page,
		perPageLimit: perPageLimit,
		totalRow:     totalRow,
		windowSize:   DefaultWindowSize,
		linkTemplate: linkTemplate,
	}
	if err := p.Validate(); err != nil {
		return Paginator{}, fmt.Errorf("pagination.New: %w", err)
	}
	return p, nil
}

// Validate reports the first invariant the Paginator violates, or nil.
// Call it after chaining builders with values that came from user input.
func (p Paginator) Validate() error {
	switch {
	case p.page < 1:
		return ErrInvalidPage
	case p.perPageLimit < 1:
		return ErrInvalidLimit
	case p.totalRow < 0:
		return ErrInvalidTotal
	case p.windowSize < 0:
		return ErrInvalidWindow
	case !strings.Contains(p.linkTemplate, PagePlaceholder):
		return ErrInvalidTemplate
	// Offset and the last window slot must fit in an int.
	case p.page > math.MaxInt/p.perPageLimit, p.page > math.MaxInt-p.windowSize:
		return ErrPageOutOfRange
	}
	return nil
}

// Page returns the current page number.
func (p Paginator) Page() int { return p.page }

// Limit returns the number of rows shown per page.
func (p Paginator) Limit() int { return p.perPageLimit }

// Offset returns page * limit. This is not the zero-based SQL offset
// ((page-1) * limit); callers that need the first row of the page must
// subtract one limit themselves.
func (p Paginator) Offset() int {
	return p.page * p.perPageLimit
}

// TotalRows returns the number of rows being paginated.
func (p Paginator) TotalRows() int { return p.totalRow }

// WindowSize returns the number of page slots shown around the current page.
func (p Paginator) WindowSize() int { return p.windowSize }

// LinkTemplate returns the URL template used for every link.
func (p Paginator) LinkTemplate() string { return p.linkTemplate }

// TotalPages returns ceil(totalRows / limit), derived from the current fields
// so it stays correct after WithTotalRow or WithPerPageLimit.
// Returns 0 when the limit is not positive.
func (p Paginator) TotalPages() int {
	if p.perPageLimit <= 0 || p.totalRow <= 0 {
		return 0
	}
	n := p.totalRow / p.perPageLimit
	if p.totalRow%p.perPageLimit != 0 {
		n++
	}
	return n
}

// WithLinkTemplate returns a copy using template for every generated URL.
func (p Paginator) WithLinkTemplate(template string) Paginator {
	p.linkTemplate = template
	return p
}

// WithPerPageLimit returns a copy with a different per-page limit.
func (p Paginator) WithPerPageLimit(n int) Paginator {
	p.perPageLimit = n
	return p
}

// WithTotalRow returns a copy with a different total row count.
func (p Paginator) WithTotalRow(n int) Paginator {
	p.totalRow = n
	return p
}

// WithWindowSize returns a copy showing n page slots. Odd values are rounded
// up to the next even number so the window splits evenly around the current page.
func (p Paginator) WithWindowSize(n int) Paginator {
	if n%2 != 0 {
		n++
	}
	p.windowSize = n
	return p
}
