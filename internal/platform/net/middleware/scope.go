package middleware

import (
	"net/http"

	"glossa/internal/modkit/scope"
)

// ScopeTag merges kv into the request scope so downstream logging can
// attribute the request to a module or operation
func ScopeTag(kv map[string]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(scope.With(r.Context(), kv)))
		})
	}
}
