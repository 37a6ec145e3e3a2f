package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input is malformed or violates a field rule
// (missing value, too short, bad email, unparsable date).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrInvalidRange is returned when a timestamp falls outside the window it
// must respect: an activity outside its trip, or a trip that ends before it starts.
// Handlers should map this to HTTP 400 with a distinct error code.
var ErrInvalidRange = errors.New("invalid range")

// ErrNotification is returned when a confirmation email could not be sent
// and the configured policy makes that fatal to the request.
// Handlers should map this to HTTP 502.
var ErrNotification = errors.New("notification failed")
