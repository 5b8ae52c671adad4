package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"eventsplatform/internal/domain"
)

// Response messages shared across controllers.
const (
	MsgValidationFailed   = "Validation failed."
	MsgInvalidCredentials = "Invalid email or password."
	MsgUnauthorized       = "Unauthorized: Invalid or expired token."
	MsgUnexpected         = "An unexpected error occurred."
)

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// Envelope is the uniform {message, ...} JSON wrapper returned by every
// endpoint that does not return a bare resource.
type Envelope map[string]any

// ErrorOptions steers the error translator per endpoint.
type ErrorOptions struct {
	// Resource names the entity for not-found responses ("Event", "Gallery").
	Resource string
	// FirstErrorOnly switches validation responses to first-error
	// presentation: {message, error: {field: message}}.
	FirstErrorOnly bool
}

// WriteError is the error translator: it maps the failure kinds produced by
// services and repositories to HTTP status plus body. Unclassified failures
// are logged with their diagnostic and reported generically.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, opts ErrorOptions) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		if opts.FirstErrorOnly {
			field, message := ve.First()
			WriteJSON(w, http.StatusUnprocessableEntity, Envelope{
				"message": MsgValidationFailed,
				"error":   map[string]string{field: message},
			})
			return
		}
		WriteJSON(w, http.StatusUnprocessableEntity, Envelope{
			"message": MsgValidationFailed,
			"errors":  ve.Fields(),
		})
	case errors.Is(err, domain.ErrNotFound):
		resource := opts.Resource
		if resource == "" {
			resource = "Resource"
		}
		msg := resource + " not found."
		WriteJSON(w, http.StatusNotFound, Envelope{"message": msg, "error": msg})
	case errors.Is(err, domain.ErrInvalidCredentials):
		WriteJSON(w, http.StatusUnauthorized, Envelope{"message": MsgInvalidCredentials})
	case errors.Is(err, domain.ErrUnauthorized):
		WriteJSON(w, http.StatusUnauthorized, Envelope{"message": MsgUnauthorized})
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSON(w, http.StatusInternalServerError, Envelope{
			"message": MsgUnexpected,
			"error":   "internal server error",
		})
	}
}

// WriteUnauthorized writes the generic 401 body.
func WriteUnauthorized(w http.ResponseWriter) {
	WriteJSON(w, http.StatusUnauthorized, Envelope{"message": MsgUnauthorized})
}
