package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/httpjson"
)

const tripNotFound = "trip not found"

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err, "")
		return
	}
	in, err := req.toDomain()
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	created, err := s.trips.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err, tripNotFound)
		return
	}

	httpjson.Write(w, http.StatusCreated, map[string]uuid.UUID{"tripId": created.ID})
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, tripNotFound)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]tripResponse{"trip": tripToResponse(trip)})
}

// UpdateTrip handles PUT /trips/{tripId}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	var req updateTripRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err, "")
		return
	}
	trip, err := req.toDomain(id)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		writeError(w, r, err, tripNotFound)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]uuid.UUID{"tripId": updated.ID})
}

// DeleteTrip handles DELETE /trips/{tripId}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, tripNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ConfirmTrip handles GET /trips/{tripId}/confirm, the link emailed to the
// owner. It confirms the trip and sends the browser to the trip page.
func (s *Server) ConfirmTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	trip, err := s.trips.Confirm(r.Context(), id)
	if err != nil {
		writeError(w, r, err, tripNotFound)
		return
	}

	http.Redirect(w, r, s.webBaseURL+"/trips/"+trip.ID.String(), http.StatusFound)
}
