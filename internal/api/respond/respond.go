// Package respond writes the API's uniform JSON responses.
//
// Error bodies always carry the same shape regardless of resource:
//
//	{"error": {"kind": "...", "message": "..."}, "errors": [{"field", "msg"}, ...]}
//
// where errors is present only for field validation failures.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/eventhub/server/internal/validation"
)

// Error kinds, one per failure class the handlers distinguish.
const (
	KindValidation   = "validation"
	KindNotFound     = "not_found"
	KindUnauthorized = "unauthorized"
	KindServerError  = "server_error"
)

type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  ErrorBody               `json:"error"`
	Errors []validation.FieldError `json:"errors,omitempty"`
}

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes a uniform error body and logs it through the request-scoped
// logger: server errors (5xx) at error level, client errors at warn.
func Error(w http.ResponseWriter, r *http.Request, status int, kind, message string, err error) {
	logEvent(r, status, kind, err, message)
	JSON(w, status, ErrorResponse{Error: ErrorBody{Kind: kind, Message: message}})
}

// FieldErrors writes an aggregated 400 for field validation failures.
func FieldErrors(w http.ResponseWriter, r *http.Request, errs []validation.FieldError) {
	logEvent(r, http.StatusBadRequest, KindValidation, nil, "validation failed")
	JSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  ErrorBody{Kind: KindValidation, Message: "Invalid request"},
		Errors: errs,
	})
}

func logEvent(r *http.Request, status int, kind string, err error, message string) {
	if r == nil {
		return
	}

	logger := zerolog.Ctx(r.Context())
	event := logger.Warn()
	if status >= 500 {
		event = logger.Error()
	}
	event.
		Err(err).
		Int("status", status).
		Str("kind", kind).
		Str("path", r.URL.Path).
		Str("method", r.Method).
		Msg(message)
}
