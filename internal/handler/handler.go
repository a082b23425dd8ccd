package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"seacoff/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeServiceError maps a service error onto a status code. Domain errors
// carry their own code; bare validation errors map to 400, everything else is
// an opaque 500 so storage details never leak to the client.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case model.ErrCodeOrderNotFound, model.ErrCodeMenuNotFound:
			status = http.StatusNotFound
		case model.ErrCodeInvalidCredentials:
			status = http.StatusUnauthorized
		}
		logger.Warn().Str("code", domainErr.Code).Int("status", status).Msg(domainErr.Message)
		writeJSON(w, status, model.ErrorResponse{Error: domainErr.Code, Message: domainErr.Message})
		return
	}

	msg := err.Error()
	if strings.Contains(msg, "required") ||
		strings.Contains(msg, "must") ||
		strings.Contains(msg, "nil") {
		writeError(w, http.StatusBadRequest, msg, logger)
		return
	}

	writeError(w, http.StatusInternalServerError, "internal server error", logger)
}
