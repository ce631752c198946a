// Package service contains the business logic behind the pagenav HTTP API.
// Services fill in configured defaults, validate input and delegate the
// arithmetic to the pagination package. No HTTP concerns live here.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/pagenav/internal/pagination"
)

// Defaults are applied to every request field the caller leaves unset.
type Defaults struct {
	PerPageLimit int
	WindowSize   int
	LinkTemplate string
}

// PageRequest carries the caller-supplied inputs from the HTTP layer.
// Nil pointers fall back to Defaults; Page falls back to 1.
type PageRequest struct {
	Page         *int
	TotalRow     int
	PerPageLimit *int
	WindowSize   *int
	LinkTemplate *string
}

// PaginationService builds paginators for incoming requests.
type PaginationService struct {
	defaults Defaults
	log      *slog.Logger
}

// NewPaginationService constructs a PaginationService. A nil logger discards output.
func NewPaginationService(d Defaults, log *slog.Logger) *PaginationService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &PaginationService{defaults: d, log: log}
}

// Summarize returns the page window and navigation targets for req.
// Returns pagination.ErrValidation (wrapped) if any input is out of range.
func (s *PaginationService) Summarize(ctx context.Context, req PageRequest) (pagination.Summary, error) {
	p, err := s.build(ctx, req)
	if err != nil {
		return pagination.Summary{}, fmt.Errorf("service.PaginationService.Summarize: %w", err)
	}
	return p.Summarize(), nil
}

// Render returns the navigation markup for req.
func (s *PaginationService) Render(ctx context.Context, req PageRequest, opts pagination.RenderOptions) (string, error) {
	p, err := s.build(ctx, req)
	if err != nil {
		return "", fmt.Errorf("service.PaginationService.Render: %w", err)
	}
	return p.Render(opts), nil
}

func (s *PaginationService) build(ctx context.Context, req PageRequest) (pagination.Paginator, error) {
	page := 1
	if req.Page != nil {
		page = *req.Page
	}
	limit := s.defaults.PerPageLimit
	if req.PerPageLimit != nil {
		limit = *req.PerPageLimit
	}
	template := s.defaults.LinkTemplate
	if req.LinkTemplate != nil {
		template = *req.LinkTemplate
	}
	window := s.defaults.WindowSize
	if req.WindowSize != nil {
		window = *req.WindowSize
	}

	p, err := pagination.New(page, req.TotalRow, limit, template)
	if err != nil {
		return pagination.Paginator{}, err
	}
	p = p.WithWindowSize(window)
	if err := p.Validate(); err != nil {
		return pagination.Paginator{}, err
	}

	s.log.DebugContext(ctx, "paginator built",
		"page", p.Page(),
		"limit", p.Limit(),
		"total_rows", p.TotalRows(),
		"total_pages", p.TotalPages(),
		"window_size", p.WindowSize(),
	)
	return p, nil
}
