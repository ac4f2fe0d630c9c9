// Package handlers wires the HTTP surface of the development server.
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"finitefield.org/staking-web/internal/middleware"
	"finitefield.org/staking-web/internal/observability"
)

// RouteRegistrar registers a set of routes against the provided router.
type RouteRegistrar func(r chi.Router)

type routerConfig struct {
	logger      *zap.Logger
	tracer      trace.TracerProvider
	timeout     time.Duration
	middlewares []func(http.Handler) http.Handler
	health      *HealthHandlers

	assets RouteRegistrar
	pages  RouteRegistrar
}

// Option customises the router configuration before construction.
type Option func(*routerConfig)

const defaultTimeout = 30 * time.Second

// NewRouter constructs the chi router with shared middleware. Page routes are
// registered last so asset and health routes take precedence.
func NewRouter(opts ...Option) chi.Router {
	cfg := routerConfig{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.health == nil {
		cfg.health = NewHealthHandlers()
	}

	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	r.Use(chiMid.RealIP)
	r.Use(observability.TraceMiddleware(cfg.tracer))
	r.Use(observability.RequestLogger(cfg.logger))
	r.Use(chiMid.Recoverer)
	if cfg.timeout > 0 {
		r.Use(chiMid.Timeout(cfg.timeout))
	}
	for _, mw := range cfg.middlewares {
		if mw != nil {
			r.Use(mw)
		}
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		middleware.WriteError(w, req, http.StatusNotFound, "page not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		middleware.WriteError(w, req, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", cfg.health.Healthz)
	r.Get("/readyz", cfg.health.Readyz)

	if cfg.assets != nil {
		cfg.assets(r)
	}
	if cfg.pages != nil {
		cfg.pages(r)
	}
	return r
}

// WithTracerProvider sets the provider for request spans. The global provider
// is used when unset.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(cfg *routerConfig) {
		cfg.tracer = tp
	}
}

// WithLogger sets the base request logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *routerConfig) {
		cfg.logger = logger
	}
}

// WithTimeout bounds request handling time. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(cfg *routerConfig) {
		cfg.timeout = d
	}
}

// WithMiddlewares appends additional global middleware to the router.
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(cfg *routerConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithHealthHandlers overrides the handlers used for /healthz and /readyz endpoints.
func WithHealthHandlers(h *HealthHandlers) Option {
	return func(cfg *routerConfig) {
		cfg.health = h
	}
}

// WithAssetRoutes configures the registrar serving the stylesheet and content images.
func WithAssetRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.assets = reg
	}
}

// WithPageRoutes configures the registrar serving rendered pages.
func WithPageRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.pages = reg
	}
}
