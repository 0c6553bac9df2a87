package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"notevault/internal/contextutil"
	"notevault/internal/service"
	"notevault/internal/storage"
)

// ErrorResponse represents an error response. This boundary is the
// only place engine errors are flattened into display strings.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps the engine's error taxonomy onto HTTP
// statuses and emits the error text as the response body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := contextutil.LoggerFromContext(r.Context())

	var validationErr *service.ValidationError
	var guardErr *storage.GuardedOverwriteError

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &guardErr):
		logger.WarnContext(r.Context(), "guarded overwrite blocked",
			"note_id", guardErr.NoteID, "existing_length", guardErr.ExistingLen)
		writeError(w, http.StatusConflict, guardErr.Error())
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrNotInitialized):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
