package i18n

import "context"

type ctxKey string

const (
	ctxKeyBundle ctxKey = "bundle"
	ctxKeyLang   ctxKey = "lang"
)

// WithLocalizer stores the bundle and the page language for components rendered under ctx.
func WithLocalizer(ctx context.Context, b *Bundle, lang string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyBundle, b)
	return context.WithValue(ctx, ctxKeyLang, lang)
}

// BundleFromContext returns the bundle stored by WithLocalizer, or nil.
func BundleFromContext(ctx context.Context) *Bundle {
	b, _ := ctx.Value(ctxKeyBundle).(*Bundle)
	return b
}

// LangFromContext returns the page language stored by WithLocalizer.
func LangFromContext(ctx context.Context) string {
	lang, _ := ctx.Value(ctxKeyLang).(string)
	return lang
}

// T translates key for the page language in ctx. Without a bundle the key is returned.
func T(ctx context.Context, key string) string {
	return BundleFromContext(ctx).T(LangFromContext(ctx), key)
}

// TOr translates key for the page language in ctx, returning fallback when no
// dictionary carries the key.
func TOr(ctx context.Context, key, fallback string) string {
	if v, ok := BundleFromContext(ctx).Lookup(LangFromContext(ctx), key); ok {
		return v
	}
	return fallback
}
