// Package service contains the business logic for the trip planner.
// Services enforce domain rules and orchestrate repo calls and notifications.
// No SQL lives here; services depend on repo interfaces, not implementations.
// Structural input checks (lengths, formats) happen in the handler before a
// service is ever called.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/slogx"
)

// NotifyPolicy decides what a failed confirmation email means for trip creation.
type NotifyPolicy int

const (
	// NotifyBestEffort commits the trip first and only logs a failed send.
	NotifyBestEffort NotifyPolicy = iota
	// NotifyStrict sends before commit; a failed send rolls the trip back.
	NotifyStrict
)

// maxTripDays caps how long a trip may last. ListByDay returns one entry per
// day, so the cap also bounds that response.
const maxTripDays = 366

// TripService implements business logic for Trip operations.
type TripService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	notifier     *Notifier
	policy       NotifyPolicy
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, participants repo.ParticipantRepo, notifier *Notifier, policy NotifyPolicy) *TripService {
	return &TripService{trips: trips, participants: participants, notifier: notifier, policy: policy}
}

// Create persists a trip with its owner and invitees, then emails the owner a
// confirmation link.
// Returns domain.ErrInvalidRange if the trip ends before it starts or lasts
// longer than maxTripDays.
// Returns domain.ErrNotification only under NotifyStrict.
func (s *TripService) Create(ctx context.Context, in domain.NewTrip) (domain.Trip, error) {
	if err := validateRange(in.StartsAt, in.EndsAt); err != nil {
		return domain.Trip{}, err
	}

	trip := domain.Trip{
		Destination: in.Destination,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
	}

	var hook repo.BeforeCommit
	if s.policy == NotifyStrict {
		hook = func(created domain.Trip, stored []domain.Participant) error {
			return s.notifier.TripConfirmation(ctx, created, stored[0])
		}
	}

	created, stored, err := s.trips.Create(ctx, trip, in.Participants(), hook)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	if s.policy == NotifyBestEffort {
		if err := s.notifier.TripConfirmation(ctx, created, stored[0]); err != nil {
			slogx.FromContext(ctx).Warn("trip created without confirmation email", "trip_id", created.ID)
		}
	}
	return created, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if it does not exist.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// Update changes destination and dates. Activities already scheduled are not
// re-checked against the new window.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateRange(trip.StartsAt, trip.EndsAt); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Confirm marks the trip confirmed. The first confirmation invites every
// participant other than the owner; later calls change nothing and send nothing.
// Invitations go out concurrently, so Confirm waits at most one mail timeout
// however many guests there are. They are not cancelled if the client
// disconnects.
func (s *TripService) Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, changed, err := s.trips.Confirm(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	if !changed {
		return trip, nil
	}

	participants, err := s.participants.ListByTripID(ctx, id)
	if err != nil {
		// The trip is confirmed either way; invitations are best-effort.
		slogx.FromContext(ctx).Error("list participants for invitations", "trip_id", id, "error", err)
		return trip, nil
	}
	s.invite(context.WithoutCancel(ctx), trip, participants)
	return trip, nil
}

// Delete removes a trip and everything that belongs to it.
// Returns domain.ErrNotFound if it does not exist.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

func (s *TripService) invite(ctx context.Context, trip domain.Trip, participants []domain.Participant) {
	var wg sync.WaitGroup
	for _, p := range participants {
		if p.IsOwner {
			continue
		}
		wg.Go(func() {
			if err := s.notifier.Invitation(ctx, trip, p); err != nil {
				slogx.FromContext(ctx).Warn("participant not invited", "trip_id", trip.ID, "participant_id", p.ID)
			}
		})
	}
	wg.Wait()
}

// validateRange enforces starts_at <= ends_at and the maxTripDays cap. Equal
// bounds form a one-instant trip.
func validateRange(startsAt, endsAt time.Time) error {
	if endsAt.Before(startsAt) {
		return fmt.Errorf("%w: trip end date cannot be before the trip start date", domain.ErrInvalidRange)
	}
	// Sub saturates on extreme dates, so this cannot wrap around.
	if endsAt.Sub(startsAt) > maxTripDays*24*time.Hour {
		return fmt.Errorf("%w: trip cannot last longer than %d days", domain.ErrInvalidRange, maxTripDays)
	}
	return nil
}
