package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	metrics := NewMetrics()
	server := newServer(cfg, metrics)

	log.Printf("Instrumented API starting on port %s (host %s)", cfg.Port, cfg.Hostname)

	errCh := make(chan error, 1)
	go func() {
		errCh <- startServer(server, cfg)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
		return
	case <-ctx.Done():
	}

	log.Println("Shutdown signal received, draining connections...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown error: %v", err)
	}

	var snapshot strings.Builder
	if err := metrics.WriteText(&snapshot); err != nil {
		log.Printf("Failed to render final metrics: %v", err)
	} else {
		log.Printf("Final metrics:\n%s", snapshot.String())
	}
	log.Println("Server shut down cleanly")
}
