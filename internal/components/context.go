package components

import (
	"context"

	"finitefield.org/staking-web/internal/i18n"
)

type ctxKey string

const ctxKeyPathname ctxKey = "pathname"

// WithPathname records the route being rendered so nested components can
// mark active links and seed per-page choices.
func WithPathname(ctx context.Context, pathname string) context.Context {
	return context.WithValue(ctx, ctxKeyPathname, pathname)
}

// PathnameFromContext returns the route stored by WithPathname.
func PathnameFromContext(ctx context.Context) string {
	p, _ := ctx.Value(ctxKeyPathname).(string)
	return p
}

func translate(ctx context.Context, key, fallback string) string {
	return i18n.TOr(ctx, key, fallback)
}
