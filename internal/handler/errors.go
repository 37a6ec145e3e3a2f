package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/httpjson"
	"github.com/pkordes/trip-planner/internal/slogx"
	"github.com/pkordes/trip-planner/internal/validation"
)

// writeError maps err onto the JSON error envelope. notFound is the message
// used for domain.ErrNotFound (e.g. "trip not found") because the handler is
// the layer that knows what was being looked up.
// Unrecognised errors are logged and reported as a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		httpjson.Write(w, http.StatusBadRequest, httpjson.ErrorResponse{Error: httpjson.ErrorDetail{
			Code:    "validation_error",
			Message: "request validation failed",
			Fields:  verr.Fields,
		}})
	case errors.Is(err, httpjson.ErrBodyTooLarge):
		httpjson.WriteError(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body too large")
	case errors.Is(err, domain.ErrValidation):
		httpjson.WriteError(w, http.StatusBadRequest, "validation_error", unwrapMessage(err, domain.ErrValidation))
	case errors.Is(err, domain.ErrInvalidRange):
		httpjson.WriteError(w, http.StatusBadRequest, "invalid_range", unwrapMessage(err, domain.ErrInvalidRange))
	case errors.Is(err, domain.ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, "not_found", notFound)
	case errors.Is(err, domain.ErrNotification):
		httpjson.WriteError(w, http.StatusBadGateway, "notification_error", "confirmation email could not be sent")
	default:
		slogx.FromContext(r.Context()).Error("unhandled error",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		httpjson.WriteError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// unwrapMessage extracts the human-readable part that follows a wrapped sentinel.
// e.g. "service.ActivityService.Create: invalid range: activity date cannot be
// after the trip end date" → "activity date cannot be after the trip end date".
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 && i+len(prefix) < len(msg) {
		return msg[i+len(prefix):]
	}
	return sentinel.Error()
}

// decode reads the JSON body into v. Syntax and shape problems are reported
// as validation errors; an oversized body keeps its own error.
func decode(r *http.Request, v any) error {
	err := httpjson.Decode(r, v)
	if err == nil || errors.Is(err, httpjson.ErrBodyTooLarge) {
		return err
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, err)
}
