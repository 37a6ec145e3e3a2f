package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/httpjson"
)

// CreateLink handles POST /trips/{tripId}/links.
func (s *Server) CreateLink(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	var req createLinkRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err, "")
		return
	}
	link, err := req.toDomain(tripID)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	created, err := s.links.Create(r.Context(), link)
	if err != nil {
		writeError(w, r, err, tripNotFound)
		return
	}

	httpjson.Write(w, http.StatusCreated, map[string]uuid.UUID{"linkId": created.ID})
}

// ListLinks handles GET /trips/{tripId}/links.
func (s *Server) ListLinks(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	links, err := s.links.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, r, err, tripNotFound)
		return
	}

	out := make([]linkResponse, len(links))
	for i, l := range links {
		out[i] = linkResponse{ID: l.ID, Title: l.Title, URL: l.URL}
	}
	httpjson.Write(w, http.StatusOK, map[string][]linkResponse{"links": out})
}
