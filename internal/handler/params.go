package handler

import (
	"html"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/pagenav/internal/pagination"
	"github.com/pkordes/pagenav/internal/service"
)

// pageParams are the query parameters shared by /pagination and /pagination/nav.
// Window is capped to bound the markup a single request can produce.
type pageParams struct {
	Page     *int    `query:"page" validate:"omitempty,gte=1"`
	Total    int     `query:"total" validate:"gte=0"`
	Limit    *int    `query:"limit" validate:"omitempty,gte=1"`
	Window   *int    `query:"window" validate:"omitempty,gte=0,lte=100"`
	Template *string `query:"template" validate:"omitempty,contains={page}"`
}

// navParams are the extra query parameters accepted by /pagination/nav.
type navParams struct {
	ULClass     *string `query:"ul_class"`
	LIClass     *string `query:"li_class"`
	PrevDisplay *bool   `query:"prev_display"`
	PrevText    *string `query:"prev_text"`
	PrevLIClass *string `query:"prev_li_class"`
	NextDisplay *bool   `query:"next_display"`
	NextText    *string `query:"next_text"`
	NextLIClass *string `query:"next_li_class"`
}

// newValidator returns a validator that reports fields by their query name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("query"), ",", 2)[0]
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// bindPageParams parses the shared query parameters. Rules are checked
// afterwards with s.validate.Struct.
func (s *Server) bindPageParams(r *http.Request) (pageParams, error) {
	var p pageParams
	q := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "page", q, &p.Page); err != nil {
		return p, err
	}
	if err := runtime.BindQueryParameter("form", true, true, "total", q, &p.Total); err != nil {
		return p, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &p.Limit); err != nil {
		return p, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "window", q, &p.Window); err != nil {
		return p, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "template", q, &p.Template); err != nil {
		return p, err
	}
	return p, nil
}

func (s *Server) bindNavParams(r *http.Request) (navParams, error) {
	var p navParams
	q := r.URL.Query()

	bindings := []struct {
		name string
		dest any
	}{
		{"ul_class", &p.ULClass},
		{"li_class", &p.LIClass},
		{"prev_display", &p.PrevDisplay},
		{"prev_text", &p.PrevText},
		{"prev_li_class", &p.PrevLIClass},
		{"next_display", &p.NextDisplay},
		{"next_text", &p.NextText},
		{"next_li_class", &p.NextLIClass},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, q, b.dest); err != nil {
			return p, err
		}
	}
	return p, nil
}

// toPageRequest converts validated query parameters into a service request.
// escape is set for the HTML endpoint, where the template ends up inside an
// href attribute.
func (p pageParams) toPageRequest(escape bool) service.PageRequest {
	req := service.PageRequest{
		Page:         p.Page,
		TotalRow:     p.Total,
		PerPageLimit: p.Limit,
		WindowSize:   p.Window,
		LinkTemplate: p.Template,
	}
	if escape && p.Template != nil {
		t := html.EscapeString(*p.Template)
		req.LinkTemplate = &t
	}
	return req
}

// toRenderOptions converts nav parameters into render options. Every string
// is HTML-escaped because pagination.Render writes values verbatim.
func (p navParams) toRenderOptions() pagination.RenderOptions {
	return pagination.RenderOptions{
		ULClass:     escaped(p.ULClass),
		LIClass:     escaped(p.LIClass),
		HidePrev:    p.PrevDisplay != nil && !*p.PrevDisplay,
		PrevText:    escaped(p.PrevText),
		PrevLIClass: escaped(p.PrevLIClass),
		HideNext:    p.NextDisplay != nil && !*p.NextDisplay,
		NextText:    escaped(p.NextText),
		NextLIClass: escaped(p.NextLIClass),
	}
}

func escaped(s *string) string {
	if s == nil {
		return ""
	}
	return html.EscapeString(*s)
}
