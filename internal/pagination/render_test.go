package pagination_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/pagenav/internal/pagination"
)

// TestRender_fullMarkup pins the exact output for a small window so any
// change to the markup shows up as a diff.
func TestRender_fullMarkup(t *testing.T) {
	p := mustNew(t, 2, 30, 10, "/p/{page}").WithWindowSize(2)

	got := p.Render(pagination.RenderOptions{})

	want := `<nav><ul class="pagination">` +
		`<li class="page-item"><a class="page-link" href="/p/1">Previous</a></li>` +
		`<li class="page-item"><a class="page-link" href="/p/1">1</a></li>` +
		`<li class="page-item active" aria-current="page"><a class="page-link" href="/p/2">2</a></li>` +
		`<li class="page-item"><a class="page-link" href="/p/3">3</a></li>` +
		`<li class="page-item"><a class="page-link" href="/p/3">Next</a></li>` +
		`</ul></nav>`
	require.Equal(t, want, got)
}

// TestRender_firstPageDisablesPrev verifies that the previous control is kept
// but disabled, with no href attribute at all.
func TestRender_firstPageDisablesPrev(t *testing.T) {
	p := mustNew(t, 1, 30, 10, "")

	got := p.Render(pagination.RenderOptions{})

	require.True(t, strings.HasPrefix(got,
		`<nav><ul class="pagination"><li class="page-item disabled"><a class="page-link">Previous</a></li>`))
	assert.Contains(t, got, `<a class="page-link" href="?page=2">Next</a>`)
}

func TestRender_lastPageDisablesNext(t *testing.T) {
	p := mustNew(t, 3, 30, 10, "")

	got := p.Render(pagination.RenderOptions{NextText: "&raquo;", NextLIClass: "nav-next"})

	require.True(t, strings.HasSuffix(got,
		`<li class="page-item nav-next disabled"><a class="page-link">&raquo;</a></li></ul></nav>`))
}

// TestRender_zeroOptionsShowControls verifies that both controls are
// displayed unless hidden explicitly.
func TestRender_zeroOptionsShowControls(t *testing.T) {
	p := mustNew(t, 2, 30, 10, "")

	got := p.Render(pagination.RenderOptions{})

	assert.Contains(t, got, `<a class="page-link" href="?page=1">Previous</a>`)
	assert.Contains(t, got, `<a class="page-link" href="?page=3">Next</a>`)
}

func TestRender_hiddenControls(t *testing.T) {
	p := mustNew(t, 2, 30, 10, "")

	got := p.Render(pagination.RenderOptions{HidePrev: true, HideNext: true})

	assert.NotContains(t, got, "Previous")
	assert.NotContains(t, got, "Next")
	assert.True(t, strings.HasPrefix(got, `<nav><ul class="pagination"><li class="page-item"><a class="page-link" href="?page=1">1</a></li>`))
}

func TestRender_customClassesAndLabels(t *testing.T) {
	p := mustNew(t, 2, 30, 10, "").WithWindowSize(0)

	got := p.Render(pagination.RenderOptions{
		ULClass:     "justify-content-center",
		LIClass:     "px-1",
		PrevText:    "Back",
		PrevLIClass: "nav-prev",
		NextText:    "Forward",
		NextLIClass: "nav-next",
	})

	want := `<nav><ul class="pagination justify-content-center">` +
		`<li class="page-item nav-prev"><a class="page-link" href="?page=1">Back</a></li>` +
		`<li class="page-item active px-1" aria-current="page"><a class="page-link" href="?page=2">2</a></li>` +
		`<li class="page-item nav-next"><a class="page-link" href="?page=3">Forward</a></li>` +
		`</ul></nav>`
	require.Equal(t, want, got)
}

// TestRender_exactlyOneActiveItem guards against the active marker leaking to
// neighbouring items.
func TestRender_exactlyOneActiveItem(t *testing.T) {
	got := mustNew(t, 5, 1000, 10, "").Render(pagination.RenderOptions{})

	assert.Equal(t, 1, strings.Count(got, `aria-current="page"`))
	assert.Equal(t, 1, strings.Count(got, "page-item active"))
}
