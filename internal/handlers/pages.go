package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"finitefield.org/staking-web/internal/content"
	"finitefield.org/staking-web/internal/i18n"
	"finitefield.org/staking-web/internal/middleware"
	"finitefield.org/staking-web/internal/observability"
	"finitefield.org/staking-web/internal/templates/staking"
)

// PageSource resolves routed pages.
type PageSource interface {
	Page(ctx context.Context, slug string) (content.QueryResult, content.PageContext, error)
}

// PageHandlers renders content pages through their template.
type PageHandlers struct {
	pages    PageSource
	template *staking.Template
	bundle   *i18n.Bundle
	homePath string
}

// NewPageHandlers renders pages from source with tmpl. Translations come
// from bundle.
func NewPageHandlers(source PageSource, tmpl *staking.Template, bundle *i18n.Bundle) *PageHandlers {
	return &PageHandlers{
		pages:    source,
		template: tmpl,
		bundle:   bundle,
		homePath: "/staking/",
	}
}

// Routes registers the root redirect and the catch-all page route.
func (h *PageHandlers) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Locale(h.bundle))
		r.Get("/", h.Home)
		r.Get("/*", h.Page)
	})
}

// Home redirects to the staking landing page in the language negotiated from
// Accept-Language.
func (h *PageHandlers) Home(w http.ResponseWriter, r *http.Request) {
	lang := i18n.LangFromContext(r.Context())
	target := h.homePath
	if lang != "" && lang != h.bundle.Fallback() {
		target = "/" + lang + h.homePath
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// Page renders the page routed at the request path. Paths missing their
// trailing slash are redirected to the canonical slug.
func (h *PageHandlers) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	slug := content.NormalizeSlug(r.URL.Path)
	if slug != r.URL.Path {
		target := slug
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return
	}

	res, pc, err := h.pages.Page(ctx, slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			middleware.WriteError(w, r, http.StatusNotFound, "page not found")
			return
		}
		logger.Error("load page", zap.String("slug", slug), zap.Error(err))
		middleware.WriteError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if pc.Template != staking.Name {
		middleware.WriteError(w, r, http.StatusNotFound, "page not found")
		return
	}

	page := h.template.Page(staking.Props{
		Data:        res,
		PageContext: pc,
		Location:    content.Location{Pathname: slug},
		Stylesheet:  StylesheetPath,
	})
	handler := templ.Handler(page, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			observability.FromContext(r.Context()).Error("render page", zap.String("slug", slug), zap.Error(err))
			middleware.WriteError(w, r, http.StatusInternalServerError, "internal error")
		})
	}))
	handler.ServeHTTP(w, r.WithContext(i18n.WithLocalizer(ctx, h.bundle, pc.Language)))
}
