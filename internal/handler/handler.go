package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/willmarsh13/BookstoreDemo/internal/middleware"
	"github.com/willmarsh13/BookstoreDemo/internal/model"

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

// writeError writes a standard error body carrying the request's correlation id.
func writeError(w http.ResponseWriter, r *http.Request, status int, resp model.ErrorResponse, logger zerolog.Logger) {
	resp.CorrelationID = middleware.RequestIDFromContext(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("error", resp.Error).
		Str("field", resp.Field).
		Int("status", status).
		Str("request_id", resp.CorrelationID).
		Msg(resp.Message)

	writeJSON(w, status, resp)
}

// respondError maps a service error onto an HTTP status. Anything that is not a
// domain error is reported as internalMessage so storage details stay server-side.
func respondError(w http.ResponseWriter, r *http.Request, err error, internalMessage string, logger zerolog.Logger) {
	var de *model.DomainError
	if errors.As(err, &de) {
		status := http.StatusBadRequest
		if de.Code == model.ErrCodeNotFound {
			status = http.StatusNotFound
		}
		writeError(w, r, status, model.ErrorResponse{Error: de.Code, Message: de.Message, Field: de.Field}, logger)
		return
	}

	logger.Error().Err(err).Bool("storage_failure", model.IsStorageFailure(err)).Msg(internalMessage)
	writeError(w, r, http.StatusInternalServerError,
		model.ErrorResponse{Error: model.ErrCodeInternalError, Message: internalMessage}, logger)
}

// pathID parses the named path wildcard as a positive int64.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func invalidParameter(field, message string) model.ErrorResponse {
	return model.ErrorResponse{Error: model.ErrCodeInvalidParameter, Field: field, Message: message}
}
