package api

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Messages surfaced to clients.
const (
	msgNotFound       = "Color not found"
	msgFetchFailed    = "Failed to fetch color"
	msgListFailed     = "Error fetching colors"
	msgInternal       = "Internal server error"
	msgMethodNotAllow = "Method not allowed"
	msgNoRoute        = "Not found"
)

// fallbackBody is written when a response value cannot be encoded, so the
// client still receives valid JSON.
var fallbackBody = []byte(`{"error":"` + msgInternal + `"}` + "\n")

// encodeJSON marshals v with a trailing newline like json.Encoder does.
func encodeJSON(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// writeJSON encodes before touching the response, so an encoding failure
// becomes a clean 500 instead of a truncated body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := encodeJSON(v)
	if err != nil {
		writeBody(w, http.StatusInternalServerError, fallbackBody)
		return
	}
	writeBody(w, status, body)
}

func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
