// Package respond writes the JSON envelopes shared by every endpoint.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chris/washflow/pkg/api"
	"github.com/chris/washflow/pkg/apperr"
	"github.com/chris/washflow/pkg/identity"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// Message writes a failure envelope with an explicit status.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, api.ErrorResponse{Success: false, Message: message})
}

// Error maps err to its status and writes a failure envelope. Internal
// errors are logged and replaced with a generic message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.StatusCode(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	Message(w, status, apperr.Message(err))
}

// BadParam is the error handler for malformed path and query parameters.
func BadParam(w http.ResponseWriter, r *http.Request, err error) {
	Message(w, http.StatusBadRequest, err.Error())
}

// Caller returns the authenticated caller, answering 401 when there is none.
func Caller(w http.ResponseWriter, r *http.Request) (*identity.Identity, bool) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		Message(w, http.StatusUnauthorized, "Access token is required.")
	}
	return id, ok
}

// DecodeBody decodes a JSON request body into v, answering 400 on failure.
func DecodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		Message(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
