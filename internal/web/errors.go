package web

// errors.go provides unified error responses for the web layer: the
// technical error is logged server-side with the request ID, and the
// client receives the user-facing message and support code produced by
// core.MapError.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"csv2sql/internal/core"
	"csv2sql/internal/logging"
)

// ErrorResponse is the JSON structure for API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// respondError logs err and writes the mapped user-facing message.
func respondError(w http.ResponseWriter, r *http.Request, err error, status int) {
	logging.FromContext(r.Context()).Warn("request failed",
		"path", r.URL.Path, "status", status, "error", err)

	code, message := splitMappedError(core.MapError(err))
	writeJSONStatus(w, status, ErrorResponse{Error: message, Code: code})
}

// splitMappedError splits a "CODE: message" string from core.MapError.
func splitMappedError(mapped string) (code, message string) {
	if i := strings.Index(mapped, ": "); i > 0 {
		return mapped[:i], mapped[i+2:]
	}
	return "", mapped
}

// statusForError picks an HTTP status for a service error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, core.ErrPersistenceDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, core.ErrSchemaNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrFileTooLarge), errors.Is(err, core.ErrSchemaTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusBadRequest
	}
}

// writeError writes a plain error message without core mapping. Used
// for transport-level failures (bad forms, rate limits).
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logging.FromContext(r.Context()).Warn("request rejected",
		"path", r.URL.Path, "status", status, "reason", message)
	writeJSONStatus(w, status, ErrorResponse{Error: message})
}

// writeJSON writes v as a 200 JSON response.
func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers already sent; nothing to do but log.
		slog.Error("json encode failed", "error", err)
	}
}
