package httpjson_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/httpjson"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	httpjson.WriteError(rec, http.StatusNotFound, "not_found", "trip not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body httpjson.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "trip not found", body.Error.Message)
	assert.Empty(t, body.Error.Fields)
}

func TestDecode(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	t.Run("ok", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Hike"}`))
		var p payload
		require.NoError(t, httpjson.Decode(req, &p))
		assert.Equal(t, "Hike", p.Title)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var p payload
		assert.ErrorContains(t, httpjson.Decode(req, &p), "request body is required")
	})

	t.Run("unknown field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"titel":"Hike"}`))
		var p payload
		assert.ErrorContains(t, httpjson.Decode(req, &p), "malformed JSON body")
	})

	t.Run("too large", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"`+strings.Repeat("x", 64)+`"}`))
		req.Body = http.MaxBytesReader(rec, req.Body, 16)
		var p payload
		assert.ErrorIs(t, httpjson.Decode(req, &p), httpjson.ErrBodyTooLarge)
	})
}
