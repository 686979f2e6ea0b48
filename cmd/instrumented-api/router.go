package main

import (
	"net/http"

	"github.com/gorilla/mux"
)

// setupRoutes configures all HTTP routes and middleware for the server.
func setupRoutes(cfg Config, metrics *Metrics) *mux.Router {
	router := mux.NewRouter()

	// Outermost first. Recovery has to wrap metrics so a panic is counted
	// before it is turned into a response.
	middlewares := []mux.MiddlewareFunc{
		requestIDMiddleware,
		loggingMiddleware(cfg.LogRequests),
		recoveryMiddleware,
		metricsMiddleware(metrics),
		corsMiddleware(cfg.EnableCORS),
		rateLimitMiddleware(newRateLimiter(cfg)),
	}
	router.Use(middlewares...)

	router.HandleFunc("/healthz", healthzHandler).Methods(http.MethodGet)
	router.HandleFunc("/work", workHandler).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// mux skips middleware for unmatched requests; wrap its fallbacks so
	// 404s and 405s are still counted.
	router.NotFoundHandler = chain(http.NotFoundHandler(), middlewares)
	router.MethodNotAllowedHandler = chain(http.HandlerFunc(methodNotAllowedHandler), middlewares)

	return router
}

func chain(h http.Handler, middlewares []mux.MiddlewareFunc) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusMethodNotAllowed)
}
