package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/httpjson"
)

const participantNotFound = "participant not found"

// ListParticipants handles GET /trips/{tripId}/participants.
func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	participants, err := s.participants.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, r, err, tripNotFound)
		return
	}

	out := make([]participantResponse, len(participants))
	for i, p := range participants {
		out[i] = participantToResponse(p)
	}
	httpjson.Write(w, http.StatusOK, map[string][]participantResponse{"participants": out})
}

// InviteParticipant handles POST /trips/{tripId}/invites.
func (s *Server) InviteParticipant(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	var req inviteRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err, "")
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, r, err, "")
		return
	}

	p, err := s.participants.Invite(r.Context(), tripID, req.Email)
	if err != nil {
		writeError(w, r, err, tripNotFound)
		return
	}

	httpjson.Write(w, http.StatusCreated, map[string]uuid.UUID{"participantId": p.ID})
}

// GetParticipant handles GET /participants/{participantId}.
func (s *Server) GetParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "participantId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	p, err := s.participants.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, participantNotFound)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]participantResponse{"participant": participantToResponse(p)})
}

// ConfirmParticipant handles GET /participants/{participantId}/confirm, the
// link in an invitation email. It redirects to the trip page.
func (s *Server) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "participantId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	p, err := s.participants.Confirm(r.Context(), id)
	if err != nil {
		writeError(w, r, err, participantNotFound)
		return
	}

	http.Redirect(w, r, s.webBaseURL+"/trips/"+p.TripID.String(), http.StatusFound)
}
