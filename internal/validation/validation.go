// Package validation implements the structural checks applied to every
// inbound field before any domain logic runs. A Checker accumulates problems
// across all fields and reports them together; it never touches storage.
package validation

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/trip-planner/internal/domain"
)

// timestampLayouts are the ISO-8601 shapes accepted for date fields, tried in order.
// Layouts without a zone are interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339, // fractional seconds are accepted by time.Parse even though the layout omits them
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the typed result of a failed validation pass.
// It unwraps to domain.ErrValidation so callers can use errors.Is.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return fmt.Sprintf("%s: %s", domain.ErrValidation, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error { return domain.ErrValidation }

// Checker collects field errors. The zero value is ready to use.
type Checker struct {
	fields []FieldError
}

// Add records a problem with field.
func (c *Checker) Add(field, message string) {
	c.fields = append(c.fields, FieldError{Field: field, Message: message})
}

// Valid reports whether no problems have been recorded yet.
func (c *Checker) Valid() bool { return len(c.fields) == 0 }

// Err returns nil when every check passed, otherwise an *Error listing all failures
// in the order they were recorded.
func (c *Checker) Err() error {
	if c.Valid() {
		return nil
	}
	fields := make([]FieldError, len(c.fields))
	copy(fields, c.fields)
	return &Error{Fields: fields}
}

// Required records an error when value is empty or whitespace.
func (c *Checker) Required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		c.Add(field, "is required")
		return false
	}
	return true
}

// MinLength records an error when the trimmed value has fewer than n characters.
func (c *Checker) MinLength(field, value string, n int) bool {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < n {
		c.Add(field, fmt.Sprintf("must be at least %d characters", n))
		return false
	}
	return true
}

// Email records an error unless value is a bare RFC 5322 address such as
// "ana@example.com". Display-name forms are rejected.
func (c *Checker) Email(field, value string) bool {
	if !IsEmail(value) {
		c.Add(field, "must be a valid email address")
		return false
	}
	return true
}

// Timestamp parses value as an ISO-8601 timestamp and returns it in UTC.
// On failure it records an error and returns the zero time.
func (c *Checker) Timestamp(field, value string) time.Time {
	t, err := ParseTimestamp(value)
	if err != nil {
		c.Add(field, "must be an ISO 8601 date or date-time")
		return time.Time{}
	}
	return t
}

// UUID binds a path parameter into a uuid.UUID the same way generated
// OpenAPI servers do. On failure it records an error and returns uuid.Nil.
func (c *Checker) UUID(field, value string) uuid.UUID {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", field, value, &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil || id == uuid.Nil {
		c.Add(field, "must be a valid UUID")
		return uuid.Nil
	}
	return id
}

// URL records an error unless value is an absolute http or https URL with a host.
func (c *Checker) URL(field, value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		c.Add(field, "must be an absolute http or https URL")
		return false
	}
	return true
}

// IsEmail reports whether s is a bare email address.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == s
}

// ParseTimestamp parses s using the accepted ISO-8601 layouts and returns UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
