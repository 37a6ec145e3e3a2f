// Package httpjson holds the JSON encoding helpers shared by handlers and
// middleware, including the error envelope every failed request returns.
package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pkordes/trip-planner/internal/validation"
)

// ErrorDetail is the body of the "error" key in an error response.
// Fields is populated only for validation failures.
type ErrorDetail struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

// ErrorResponse is the envelope written for every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorResponse with the given status and error code.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	Write(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// ErrBodyTooLarge is returned by Decode when the body exceeds the limit set by
// http.MaxBytesReader.
var ErrBodyTooLarge = errors.New("request body too large")

// Decode reads a single JSON object from r into v. Unknown fields are
// rejected so typos in field names surface as errors instead of silently
// producing zero values.
func Decode(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return ErrBodyTooLarge
		case errors.Is(err, io.EOF):
			return errors.New("request body is required")
		default:
			return fmt.Errorf("malformed JSON body: %w", err)
		}
	}
	return nil
}
