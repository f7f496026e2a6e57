package handler

// RESPONSE HELPERS:
// Every handler answers through writeJSON or writeError, so all endpoints
// share one content type and one error shape:
//
//	{"error": "not_found", "message": "snack not found with id 7"}
//	{"error": "validation_error", "message": "...", "fields": ["title", "author"]}
//
// "fields" is present only when the error names specific payload fields.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/snack-api/internal/apperror"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string   `json:"error"`            // Machine-readable kind (e.g. "not_found")
	Message string   `json:"message"`          // Human-readable description
	Fields  []string `json:"fields,omitempty"` // Offending payload fields, if any
}

// Error kinds used in ErrorResponse.Error.
const (
	KindValidation   = "validation_error"
	KindNotFound     = "not_found"
	KindConflict     = "conflict"
	KindUnauthorized = "unauthorized"
	KindInternal     = "internal_error"
)

// writeJSON sends a JSON response with the given status code.
//
// HEADER ORDER MATTERS:
// Headers and status must be set before the body; once Encode writes,
// later header changes are silently dropped.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to an HTTP status and sends it.
//
// ERROR MAPPING:
// Services return apperror values wrapped with fmt.Errorf("...: %w").
// errors.Is walks the chain down to the sentinel, errors.As pulls out the
// *AppError for its message and fields. The service layer never learns
// about status codes.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status, kind := classify(err)
		if status != http.StatusInternalServerError {
			writeJSON(w, status, ErrorResponse{
				Error:   kind,
				Message: appErr.Message,
				Fields:  appErr.Fields,
			})
			return
		}
	}

	// Unknown error: never leak SQL, file paths or driver messages.
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   KindInternal,
		Message: "An internal error occurred",
	})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest, KindValidation
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound, KindNotFound
	case errors.Is(err, apperror.ErrDuplicateKey):
		return http.StatusConflict, KindConflict
	case errors.Is(err, apperror.ErrUnauthorized):
		return http.StatusUnauthorized, KindUnauthorized
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

// pathID parses the {id} URL parameter. Anything that is not a positive
// integer cannot name a stored record, so it is reported as not found.
func pathID(r *http.Request, resource string) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NotFound(resource, raw)
	}
	return id, nil
}
