// ABOUTME: Bearer token authentication for the admin endpoints
// ABOUTME: Guards /api/admin paths; other routes pass through untouched

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

const adminPathPrefix = "/api/admin"

// AdminAuthMiddleware requires a bearer token on admin routes. An empty
// token disables the admin surface entirely rather than leaving it open.
func AdminAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, adminPathPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			if token == "" {
				writeAuthError(w, http.StatusForbidden, "Admin endpoints are disabled")
				return
			}

			presented := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				writeAuthError(w, http.StatusUnauthorized, "Invalid or missing admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
