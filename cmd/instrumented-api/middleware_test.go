package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimitMiddleware(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 1
	router, m := newTestRouter(cfg)

	// First should pass
	if rr := doRequest(t, router, "GET", "/healthz"); rr.Code != http.StatusOK {
		t.Fatalf("first req status: %d", rr.Code)
	}
	// Second immediate request should be limited
	rr := doRequest(t, router, "GET", "/healthz")
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("second req expected 429, got %d", rr.Code)
	}
	if retryAfter := rr.Header().Get("Retry-After"); retryAfter != "1" {
		t.Errorf("handler returned wrong Retry-After header: got %v, want '1'", retryAfter)
	}
	if got := requestCount(m, "/healthz", "GET", "429"); got != 1 {
		t.Errorf("expected one 429 to be counted, got %v", got)
	}
	// Scrapes are never limited
	if rr := doRequest(t, router, "GET", "/metrics"); rr.Code != http.StatusOK {
		t.Errorf("metrics should bypass the limiter, got %d", rr.Code)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	router, _ := newTestRouter(testConfig())
	rr := doRequest(t, router, "GET", "/healthz")
	if rid := rr.Header().Get("X-Request-ID"); rid == "" {
		t.Errorf("missing X-Request-ID header")
	}
	// If provided, should echo back
	req, _ := http.NewRequest("GET", "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr2 := httptest.NewRecorder()
	router.ServeHTTP(rr2, req)
	if rr2.Header().Get("X-Request-ID") != "abc-123" {
		t.Errorf("expected X-Request-ID=abc-123 got %q", rr2.Header().Get("X-Request-ID"))
	}
}

func TestCORSMiddleware(t *testing.T) {
	router, _ := newTestRouter(testConfig())
	if h := doRequest(t, router, "GET", "/healthz").Header().Get("Access-Control-Allow-Origin"); h != "" {
		t.Errorf("CORS disabled by default, got %q", h)
	}

	cfg := testConfig()
	cfg.EnableCORS = true
	router, _ = newTestRouter(cfg)
	if h := doRequest(t, router, "GET", "/healthz").Header().Get("Access-Control-Allow-Origin"); h != "*" {
		t.Errorf("expected Access-Control-Allow-Origin=*, got %q", h)
	}
}

func TestLoggingMiddlewareEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.LogRequests = true
	router, m := newTestRouter(cfg)
	if rr := doRequest(t, router, "GET", "/work?fail=true"); rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rr.Code)
	}
	if got := errorCount(m, "/work", "GET", "500"); got != 1 {
		t.Errorf("expected error counter 1, got %v", got)
	}
}
