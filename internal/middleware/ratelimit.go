package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"seacoff/internal/cache"

	"github.com/rs/zerolog"
)

// RateLimit throttles a handler to maxAttempts per window, keyed by client
// IP. Counters live in a shared expirable store so the limit holds across
// instances. A store outage fails open: a broken rate limiter must not take
// the login endpoint down with it.
func RateLimit(counter cache.Counter, maxAttempts int, window time.Duration, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			count, ttl, err := counter.Incr(r.Context(), key, window)
			if err != nil {
				logger.Warn().Err(err).Str("key", key).Msg("rate limit store unavailable, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			remaining := int64(maxAttempts) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", maxAttempts))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

			if count > int64(maxAttempts) {
				retryAfter := int(ttl / time.Second)
				if retryAfter < 1 {
					retryAfter = 1
				}
				logger.Warn().
					Str("key", key).
					Int64("count", count).
					Msg("rate limit exceeded")

				w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error": "too many attempts, try again later"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
