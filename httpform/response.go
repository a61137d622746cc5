package httpform

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Envelope is the JSON response shape for submission outcomes.
type Envelope struct {
	Code   string         `json:"code"`
	Values map[string]any `json:"values,omitempty"`
	Error  *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail carries the failure code and per-field messages.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Envelope{
		Code:  code,
		Error: &ErrorDetail{Code: code, Message: message},
	})
}
