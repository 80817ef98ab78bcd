package localekit

import "net/http"

// Middleware resolves the locale and timezone for each request and stores
// both in the request context, where the Kit's translation and formatting
// operations pick them up. Selector registration after the middleware is
// installed takes effect on the next request.
func (k *Kit) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLocale(r.Context(), k.ResolveLocale(r))
			ctx = WithTimezone(ctx, k.ResolveTimezone(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
