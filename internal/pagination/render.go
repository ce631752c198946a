package pagination

import (
	"strconv"
	"strings"
)

// RenderOptions customizes the markup produced by Render.
// The zero value renders both controls with the default labels.
type RenderOptions struct {
	// ULClass is appended to the "pagination" class of the <ul>.
	ULClass string
	// LIClass is appended to the class of every page item.
	LIClass string

	// HidePrev leaves the previous control out entirely. The zero value
	// displays it, disabled on the first page.
	HidePrev    bool
	PrevText    string // defaults to "Previous"
	PrevLIClass string

	// HideNext leaves the next control out entirely. The zero value
	// displays it, disabled on the last page.
	HideNext    bool
	NextText    string // defaults to "Next"
	NextLIClass string
}

const (
	defaultPrevText = "Previous"
	defaultNextText = "Next"
)

// Render returns a Bootstrap-compatible navigation fragment.
// Values are written as-is: URLs, labels and class names are not escaped,
// so callers must not feed untrusted input into the template or options.
func (p Paginator) Render(opts RenderOptions) string {
	var b strings.Builder

	b.WriteString(`<nav><ul class="pagination`)
	writeClass(&b, opts.ULClass)
	b.WriteString(`">`)

	if !opts.HidePrev {
		prev, ok := p.Prev()
		writeControl(&b, prev, ok, opts.PrevLIClass, orDefault(opts.PrevText, defaultPrevText))
	}

	for _, item := range p.Window() {
		b.WriteString(`<li class="page-item`)
		if item.Active {
			b.WriteString(" active")
		}
		writeClass(&b, opts.LIClass)
		b.WriteString(`"`)
		if item.Active {
			b.WriteString(` aria-current="page"`)
		}
		b.WriteString(`><a class="page-link" href="`)
		b.WriteString(item.URL)
		b.WriteString(`">`)
		b.WriteString(strconv.Itoa(item.Page))
		b.WriteString(`</a></li>`)
	}

	if !opts.HideNext {
		next, ok := p.Next()
		writeControl(&b, next, ok, opts.NextLIClass, orDefault(opts.NextText, defaultNextText))
	}

	b.WriteString(`</ul></nav>`)
	return b.String()
}

// writeControl writes a previous/next item. A missing target is rendered
// disabled and without an href attribute.
func writeControl(b *strings.Builder, target NavLink, ok bool, class, text string) {
	b.WriteString(`<li class="page-item`)
	writeClass(b, class)
	if !ok {
		b.WriteString(" disabled")
	}
	b.WriteString(`"><a class="page-link"`)
	if ok {
		b.WriteString(` href="`)
		b.WriteString(target.URL)
		b.WriteString(`"`)
	}
	b.WriteString(`>`)
	b.WriteString(text)
	b.WriteString(`</a></li>`)
}

func writeClass(b *strings.Builder, class string) {
	if class != "" {
		b.WriteString(" ")
		b.WriteString(class)
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
