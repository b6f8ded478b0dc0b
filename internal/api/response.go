// Package api holds the HTTP plumbing shared by all service handlers:
// response envelopes, request decoding and request-scoped logging.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Error is the JSON error envelope. Error carries a stable machine-readable
// code; Message is for humans. Internal detail never leaves the server.
type Error struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error envelope.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	WriteJSON(w, status, Error{
		Error:     code,
		Message:   message,
		RequestID: GetRequestID(r.Context()),
	})
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields,
// oversized bodies and trailing garbage. It writes the 400 itself and
// reports whether decoding succeeded.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid json body")
		return false
	}

	if err := dec.Decode(&struct{}{}); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid json body")
		return false
	}

	return true
}
