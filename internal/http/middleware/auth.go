package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/davidbz/lessongen/internal/observability"
)

// APIKeyHeader carries the shared secret of trusted callers.
const APIKeyHeader = "X-Api-Key"

// Auth creates a middleware that rejects requests without the shared API key.
// The health endpoint stays open. An empty key disables the check.
func Auth(apiKey string) Middleware {
	if apiKey == "" {
		observability.FromContext(context.Background()).Warn("SERVER_API_KEY not set, the API accepts unauthenticated callers")
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	want := []byte(apiKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			got := []byte(r.Header.Get(APIKeyHeader))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				observability.FromContext(r.Context()).Warn("request rejected, bad API key",
					observability.String("path", r.URL.Path),
				)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
