package handler

import (
	"net/http"

	"github.com/pkordes/pagenav/internal/pagination"
)

// PageLink is one entry of the page window in JSON responses.
type PageLink struct {
	URL    string `json:"url"`
	Page   int    `json:"page"`
	Active bool   `json:"active"`
}

// NavLink is a next/previous target in JSON responses.
type NavLink struct {
	URL  string `json:"url"`
	Page int    `json:"page"`
}

// PaginationResponse is the body of GET /pagination.
type PaginationResponse struct {
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
	TotalRows  int        `json:"total_rows"`
	TotalPages int        `json:"total_pages"`
	WindowSize int        `json:"window_size"`
	Pages      []PageLink `json:"pages"`
	Next       *NavLink   `json:"next,omitempty"`
	Prev       *NavLink   `json:"prev,omitempty"`
}

// GetPagination handles GET /pagination.
// Supports ?page, ?total (required), ?limit, ?window and ?template.
func (s *Server) GetPagination(w http.ResponseWriter, r *http.Request) {
	params, err := s.bindPageParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, parameterBody(err))
		return
	}
	if err := s.validate.Struct(params); err != nil {
		s.writeError(w, r, err)
		return
	}

	summary, err := s.pages.Summarize(r.Context(), params.toPageRequest(false))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryToResponse(summary))
}

// GetPaginationNav handles GET /pagination/nav.
// Accepts the /pagination parameters plus the render options and returns an
// HTML fragment. User-supplied strings are escaped before rendering.
func (s *Server) GetPaginationNav(w http.ResponseWriter, r *http.Request) {
	params, err := s.bindPageParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, parameterBody(err))
		return
	}
	nav, err := s.bindNavParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, parameterBody(err))
		return
	}
	if err := s.validate.Struct(params); err != nil {
		s.writeError(w, r, err)
		return
	}

	markup, err := s.pages.Render(r.Context(), params.toPageRequest(true), nav.toRenderOptions())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(markup))
}

// --- mapping helpers --------------------------------------------------------

// summaryToResponse converts a pagination.Summary into its JSON shape.
// Pages is always non-nil so clients can range over it.
func summaryToResponse(sum pagination.Summary) PaginationResponse {
	resp := PaginationResponse{
		Page:       sum.Page,
		Limit:      sum.Limit,
		Offset:     sum.Offset,
		TotalRows:  sum.TotalRows,
		TotalPages: sum.TotalPages,
		WindowSize: sum.WindowSize,
		Pages:      make([]PageLink, len(sum.Pages)),
	}
	for i, p := range sum.Pages {
		resp.Pages[i] = PageLink{URL: p.URL, Page: p.Page, Active: p.Active}
	}
	if sum.Next != nil {
		resp.Next = &NavLink{URL: sum.Next.URL, Page: sum.Next.Page}
	}
	if sum.Prev != nil {
		resp.Prev = &NavLink{URL: sum.Prev.URL, Page: sum.Prev.Page}
	}
	return resp
}
