package main

import (
	"log"
	"net/http"
	"time"
)

// loggingMiddleware writes an access log line per request when enabled.
func loggingMiddleware(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			log.Printf("%s %s %s [%s]", r.RemoteAddr, r.Method, r.URL.Path, r.Header.Get("X-Request-ID"))

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			log.Printf("%s %s %s - %d %v", r.RemoteAddr, r.Method, r.URL.Path, rw.statusCode, time.Since(start))
		})
	}
}
