package main

import (
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// newServer builds the HTTP server around the instrumented router.
func newServer(cfg Config, metrics *Metrics) *http.Server {
	router := setupRoutes(cfg, metrics)

	// Wrap the router with h2c to support HTTP/2 over cleartext
	handler := h2c.NewHandler(router, &http2.Server{})

	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
