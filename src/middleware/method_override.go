package middleware

import (
	"net/http"
	"strings"
)

const methodOverrideParam = "_method"

// MethodOverride lets HTML forms, which can only POST, reach PUT and DELETE
// routes through ?_method= or the X-HTTP-Method-Override header. It wraps the
// router because gin matches routes before any gin middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := r.URL.Query().Get(methodOverrideParam)
			if method == "" {
				method = r.Header.Get("X-HTTP-Method-Override")
			}
			switch m := strings.ToUpper(strings.TrimSpace(method)); m {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}
