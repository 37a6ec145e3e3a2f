package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/pkordes/trip-planner/internal/httpjson"
	"github.com/pkordes/trip-planner/internal/slogx"
	"github.com/pkordes/trip-planner/spec"
)

type statusResponse struct {
	Status string `json:"status"`
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} whenever the process is serving.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	httpjson.Write(w, http.StatusOK, statusResponse{Status: "ok"})
}

// GetReady handles GET /readyz. It reports 503 while the database is unreachable.
func (s *Server) GetReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			slogx.FromContext(r.Context()).Warn("readiness check failed", "error", err)
			httpjson.Write(w, http.StatusServiceUnavailable, statusResponse{Status: "unavailable"})
			return
		}
	}
	httpjson.Write(w, http.StatusOK, statusResponse{Status: "ready"})
}

// GetOpenAPI handles GET /openapi.yaml with the document embedded at build time.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
