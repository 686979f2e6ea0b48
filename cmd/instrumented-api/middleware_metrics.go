package main

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// faultStatus is recorded when a handler panics instead of responding.
const faultStatus = "500"

// metricsMiddleware counts every request in http_requests_total and every 5xx
// outcome in http_errors_total. A panicking handler is counted as a 500 and
// the panic keeps unwinding untouched; turning it into a response is left to
// recoveryMiddleware or the server.
func metricsMiddleware(m *Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := routePath(r)
			method := r.Method

			completed := false
			defer func() {
				// Deferred calls run while a panic unwinds; recover is not
				// called so the original panic and its stack survive.
				if !completed {
					m.IncError(path, method, faultStatus)
					m.IncRequest(path, method, faultStatus)
				}
			}()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)
			completed = true

			status := strconv.Itoa(rw.statusCode)
			m.IncRequest(path, method, status)
			if rw.statusCode >= 500 && rw.statusCode <= 599 {
				m.IncError(path, method, status)
			}
		})
	}
}

// routePath returns the matched route template, e.g. "/work", or the raw URL
// path when no route matched.
func routePath(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}
