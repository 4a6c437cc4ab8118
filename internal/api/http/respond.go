package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Every error
// is terminal for the request, never for the process.
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErr *domain.ValidationError
		duplicateErr  *domain.DuplicateError
		inUseErr      *domain.InUseError
		notFoundErr   *domain.NotFoundError
		dataErr       *domain.DataAccessError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
	case errors.As(err, &duplicateErr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: duplicateErr.Error()})
	case errors.Is(err, domain.ErrAlreadyRented), errors.Is(err, domain.ErrNotRented):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.As(err, &inUseErr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: inUseErr.Error()})
	case errors.As(err, &notFoundErr):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: notFoundErr.Error()})
	case errors.As(err, &dataErr):
		// Already logged at the repository; retryable from the caller's side.
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "temporary data access failure"})
	default:
		logger.Error("Unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
