package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/middleware"
	"github.com/pkordes/trip-planner/internal/slogx"
)

// withRequestID simulates what chimiddleware.RequestID does: inject a known
// ID into context. This keeps the tests focused on our middleware only.
func withRequestID(req *http.Request, id string) *http.Request {
	ctx := context.WithValue(req.Context(), chimiddleware.RequestIDKey, id)
	return req.WithContext(ctx)
}

// TestSlogLogger_logsRequestFields verifies that the SlogLogger middleware
// writes a structured JSON log line containing method, path, status, duration,
// and the request ID placed in context by chi's RequestID middleware.
func TestSlogLogger_logsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.NewSlogLogger(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}),
	)

	req := withRequestID(httptest.NewRequest(http.MethodPost, "/trips", nil), "test-req-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	require.Equal(t, "POST", logEntry["method"])
	require.Equal(t, "/trips", logEntry["path"])
	require.EqualValues(t, http.StatusCreated, logEntry["status"])
	require.Equal(t, "test-req-id", logEntry["request_id"])
	require.NotNil(t, logEntry["duration_ms"])
}

// TestSlogLogger_storesRequestLogger verifies that downstream code logging via
// slogx.FromContext gets the request ID attached automatically.
func TestSlogLogger_storesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.NewSlogLogger(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slogx.FromContext(r.Context()).Info("inside handler")
		}),
	)

	req := withRequestID(httptest.NewRequest(http.MethodGet, "/healthz", nil), "abc")
	h.ServeHTTP(httptest.NewRecorder(), req)

	dec := json.NewDecoder(&buf)
	var first map[string]any
	require.NoError(t, dec.Decode(&first))
	require.Equal(t, "inside handler", first["msg"])
	require.Equal(t, "abc", first["request_id"])

	var second map[string]any
	require.NoError(t, dec.Decode(&second))
	require.Equal(t, "request", second["msg"])
	require.EqualValues(t, http.StatusOK, second["status"])
}
