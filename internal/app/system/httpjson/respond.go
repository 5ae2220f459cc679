// internal/app/system/httpjson/respond.go
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Respond writes data as a JSON response with the given status code.
// The payload is marshaled before any header is written so an encoding
// failure still yields a well-formed 500.
func Respond(w http.ResponseWriter, status int, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// problem is the error payload shape, loosely following RFC 7807.
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Error writes a JSON error response. Detail should be safe to show to
// clients; internal error text belongs in logs, not here.
func Error(w http.ResponseWriter, status int, detail string) {
	payload, err := json.Marshal(problem{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// Unauthorized writes a 401 with the WWW-Authenticate header required for
// bearer-token challenges.
func Unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	Error(w, http.StatusUnauthorized, detail)
}
