package middleware

import (
	"net/http"

	"finitefield.org/staking-web/internal/i18n"
)

// Locale negotiates the request language from Accept-Language against bundle
// and stores the localizer on the request context. Responses vary on the
// header.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept-Language")
			lang := bundle.Resolve(r.Header.Get("Accept-Language"))
			next.ServeHTTP(w, r.WithContext(i18n.WithLocalizer(r.Context(), bundle, lang)))
		})
	}
}
