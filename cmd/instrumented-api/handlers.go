package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
)

// Health check handler
func healthzHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// workHandler runs a small deterministic computation, or fails on purpose
// when called with ?fail=true.
func workHandler(w http.ResponseWriter, r *http.Request) {
	fail, err := parseQueryBool(r.URL.Query().Get("fail"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "invalid value for query parameter fail"})
		return
	}
	if fail {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "intentional failure"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"result": sumOfSquares(100)})
}

// sumOfSquares returns 1² + 2² + ... + n².
func sumOfSquares(n int) int {
	total := 0
	for i := 1; i <= n; i++ {
		total += i * i
	}
	return total
}

// parseQueryBool accepts the usual spellings of a boolean query value. An
// empty value means false.
func parseQueryBool(s string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "":
		return false, nil
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
