package middleware

import (
	"encoding/json"
	"net/http"
)

// writeJSONMessage writes the {"message": ...} error envelope
func writeJSONMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// RateLimitExceeded is an http.HandlerFunc for httprate's limit handler
func RateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	writeJSONMessage(w, http.StatusTooManyRequests, "Too many requests")
}
