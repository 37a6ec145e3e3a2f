package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/slogx"
)

// ParticipantService implements business logic for Participant operations.
type ParticipantService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	notifier     *Notifier
}

// NewParticipantService constructs a ParticipantService backed by the provided repos.
func NewParticipantService(trips repo.TripRepo, participants repo.ParticipantRepo, notifier *Notifier) *ParticipantService {
	return &ParticipantService{trips: trips, participants: participants, notifier: notifier}
}

// ListByTrip returns the trip's participants, owner first.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ParticipantService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}
	participants, err := s.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}
	return participants, nil
}

// GetByID returns a single participant.
// Returns domain.ErrNotFound if it does not exist.
func (s *ParticipantService) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	result, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.GetByID: %w", err)
	}
	return result, nil
}

// Confirm marks the participant as attending. Confirming twice is harmless.
func (s *ParticipantService) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	result, err := s.participants.Confirm(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	return result, nil
}

// Invite adds an unconfirmed participant to an existing trip and emails them
// a confirmation link. A failed email does not undo the invitation.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ParticipantService) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}
	p, err := s.participants.Create(ctx, domain.Participant{TripID: tripID, Email: email})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}
	if err := s.notifier.Invitation(ctx, trip, p); err != nil {
		slogx.FromContext(ctx).Warn("participant added without invitation email", "trip_id", tripID, "participant_id", p.ID)
	}
	return p, nil
}
