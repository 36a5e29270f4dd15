// Handler helper functions: envelope encoding and error mapping.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gyanguru/gyanguru/internal/domain/tutor"
)

const (
	headerContentType = "Content-Type"
	mimeJSON          = "application/json"

	statusSuccess = "success"
	statusError   = "error"

	msgNotFound = "Resource not found"
	msgInternal = "Internal server error"
)

// decodeJSONBody decodes the request body into dst. A missing or malformed
// body is not an error here: the zero value flows into field validation,
// which rejects with the field-specific message.
func decodeJSONBody(r *http.Request, dst any) {
	if r.Body == nil {
		return
	}
	_ = json.NewDecoder(r.Body).Decode(dst)
}

// writeJSON writes v with the given HTTP status.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set(headerContentType, mimeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"status":"error","message":"failed to encode response"}`, http.StatusInternalServerError)
	}
}

// WriteError writes the uniform error envelope. Exported so the router can
// reuse it for its NotFound and MethodNotAllowed fallbacks.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{
		"status":  statusError,
		"message": message,
	})
}

// writeServiceError maps a pipeline error to its HTTP status. Upstream
// adapter messages are surfaced verbatim; anything unrecognized stays a
// generic 500 so internal detail never leaks.
func writeServiceError(w http.ResponseWriter, err error) {
	var valErr *tutor.ValidationError
	if errors.As(err, &valErr) {
		WriteError(w, http.StatusBadRequest, valErr.Message)
		return
	}
	var upErr *tutor.UpstreamError
	if errors.As(err, &upErr) {
		WriteError(w, http.StatusInternalServerError, upErr.Message)
		return
	}
	WriteError(w, http.StatusInternalServerError, msgInternal)
}
