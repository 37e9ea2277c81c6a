package utils

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Unified JSON response function
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteJSONError writes the standard {"error": "..."} payload.
func WriteJSONError(w http.ResponseWriter, statusCode int, msg string) {
	WriteJSONResponse(w, statusCode, map[string]string{"error": msg})
}

// NormalizeEmail lowercases and trims an email address before storage or lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail is a light sanity check, real confirmation happens via the
// verification code sent to the address.
func ValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
