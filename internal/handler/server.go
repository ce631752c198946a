// Package handler implements the HTTP handlers for the pagenav API.
// All handlers are methods on Server. Methods are split into files by
// endpoint (health.go, pagination.go) but share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/pkordes/pagenav/internal/pagination"
	"github.com/pkordes/pagenav/internal/service"
)

// PaginationServicer defines the operations the pagination handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the service layer.
type PaginationServicer interface {
	Summarize(ctx context.Context, req service.PageRequest) (pagination.Summary, error)
	Render(ctx context.Context, req service.PageRequest, opts pagination.RenderOptions) (string, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	pages    PaginationServicer
	validate *validator.Validate
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(pages PaginationServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		pages:    pages,
		validate: newValidator(),
		log:      log,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}

// Handler returns a chi router with every API route registered on s.
// Wire it in main.go via r.Mount("/", handler.Handler(srv)).
func Handler(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/pagination", s.GetPagination)
	r.Get("/pagination/nav", s.GetPaginationNav)
	return r
}
