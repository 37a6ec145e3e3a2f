package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/httpjson"
)

// CreateActivity handles POST /trips/{tripId}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	var req createActivityRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err, "")
		return
	}
	activity, err := req.toDomain(tripID)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	created, err := s.activities.Create(r.Context(), activity)
	if err != nil {
		writeError(w, r, err, tripNotFound)
		return
	}

	httpjson.Write(w, http.StatusCreated, map[string]any{
		"activityId": created.ID,
		"title":      created.Title,
		"occurs_at":  created.OccursAt,
	})
}

const activityNotFound = "activity not found"

// GetActivity handles GET /trips/{tripId}/activities/{activityId}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	activityID, err := pathUUID(r, "activityId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	activity, err := s.activities.GetByID(r.Context(), tripID, activityID)
	if err != nil {
		writeError(w, r, err, activityNotFound)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]activityResponse{"activity": activityToResponse(activity)})
}

// ListActivities handles GET /trips/{tripId}/activities.
// Activities are grouped per day of the trip, empty days included.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	days, err := s.activities.ListByDay(r.Context(), tripID)
	if err != nil {
		writeError(w, r, err, tripNotFound)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string][]activityDayResponse{"activities": activityDaysToResponse(days)})
}
