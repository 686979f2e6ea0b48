package main

import (
	"errors"
	"log"
	"net/http"
	"runtime/debug"
)

// recoveryMiddleware turns a handler panic into a generic 500 JSON response.
// It must sit outside metricsMiddleware so the fault is counted first.
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := newResponseWriter(w)
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			log.Printf("panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
			if rw.written {
				// Too late for a clean response; abort the connection instead.
				panic(http.ErrAbortHandler)
			}
			writeJSON(rw, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}()
		next.ServeHTTP(rw, r)
	})
}
