package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
)

func TestListParticipants_200(t *testing.T) {
	tripID := uuid.New()
	participants := &mockParticipantServicer{
		listByTrip: func(context.Context, uuid.UUID) ([]domain.Participant, error) {
			return []domain.Participant{
				{ID: uuid.New(), TripID: tripID, Name: "Ana", Email: "ana@example.com", IsOwner: true, IsConfirmed: true},
				{ID: uuid.New(), TripID: tripID, Email: "bob@example.com"},
			}, nil
		},
	}

	rec := do(newHTTPHandler(services{participants: participants}), http.MethodGet, "/trips/"+tripID.String()+"/participants", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Participants []struct {
			Name        *string `json:"name"`
			Email       string  `json:"email"`
			IsOwner     bool    `json:"is_owner"`
			IsConfirmed bool    `json:"is_confirmed"`
		} `json:"participants"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Participants, 2)
	require.NotNil(t, resp.Participants[0].Name)
	assert.Equal(t, "Ana", *resp.Participants[0].Name)
	assert.Nil(t, resp.Participants[1].Name, "invitee name is null until known")
	assert.False(t, resp.Participants[1].IsConfirmed)
}

func TestListParticipants_404(t *testing.T) {
	participants := &mockParticipantServicer{
		listByTrip: func(context.Context, uuid.UUID) ([]domain.Participant, error) { return nil, domain.ErrNotFound },
	}

	rec := do(newHTTPHandler(services{participants: participants}), http.MethodGet, "/trips/"+uuid.NewString()+"/participants", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetParticipant_404(t *testing.T) {
	participants := &mockParticipantServicer{
		getByID: func(context.Context, uuid.UUID) (domain.Participant, error) { return domain.Participant{}, domain.ErrNotFound },
	}

	rec := do(newHTTPHandler(services{participants: participants}), http.MethodGet, "/participants/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "participant not found", decodeError(t, rec).Message)
}

func TestConfirmParticipant_302(t *testing.T) {
	tripID := uuid.New()
	participants := &mockParticipantServicer{
		confirm: func(_ context.Context, id uuid.UUID) (domain.Participant, error) {
			return domain.Participant{ID: id, TripID: tripID, IsConfirmed: true}, nil
		},
	}

	rec := do(newHTTPHandler(services{participants: participants}), http.MethodGet, "/participants/"+uuid.NewString()+"/confirm", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, webBaseURL+"/trips/"+tripID.String(), rec.Header().Get("Location"))
}

func TestInviteParticipant_201(t *testing.T) {
	tripID := uuid.New()
	participantID := uuid.New()
	participants := &mockParticipantServicer{
		invite: func(_ context.Context, id uuid.UUID, email string) (domain.Participant, error) {
			assert.Equal(t, tripID, id)
			assert.Equal(t, "dan@example.com", email)
			return domain.Participant{ID: participantID, TripID: id, Email: email}, nil
		},
	}

	rec := do(newHTTPHandler(services{participants: participants}), http.MethodPost, "/trips/"+tripID.String()+"/invites",
		jsonBody(t, map[string]string{"email": "dan@example.com"}))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		ParticipantID uuid.UUID `json:"participantId"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, participantID, resp.ParticipantID)
}

func TestInviteParticipant_400_BadEmail(t *testing.T) {
	rec := do(newHTTPHandler(services{}), http.MethodPost, "/trips/"+uuid.NewString()+"/invites",
		jsonBody(t, map[string]string{"email": "dan@"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"email"}, fieldNames(decodeError(t, rec)))
}
