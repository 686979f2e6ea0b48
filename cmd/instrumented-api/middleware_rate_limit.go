package main

import (
	"net/http"

	"golang.org/x/time/rate"
)

// newRateLimiter returns nil when rate limiting is disabled.
func newRateLimiter(cfg Config) *rate.Limiter {
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst > 0 {
		return rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}
	return nil
}

// rateLimitMiddleware enforces a global rate limiter. The metrics endpoint is
// exempt so scrapes keep working under load.
func rateLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}
			if !limiter.Allow() {
				// Set headers before writing status/body
				w.Header().Set("Retry-After", "1")
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
