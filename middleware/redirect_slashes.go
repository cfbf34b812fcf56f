package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RedirectSlashes sends /about/ to /about. Paths under excludePrefix are left alone.
func RedirectSlashes(excludePrefix string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			var path string
			rctx := chi.RouteContext(r.Context())
			if rctx != nil && rctx.RoutePath != "" {
				path = rctx.RoutePath
			} else {
				path = r.URL.Path
			}
			if len(path) > 1 && path[len(path)-1] == '/' &&
				!(strings.HasPrefix(path, excludePrefix) && path != excludePrefix) {

				path = "/" + strings.TrimLeft(strings.TrimRight(path, "/"), "/")
				if r.URL.RawQuery != "" {
					path += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, path, http.StatusMovedPermanently)
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
