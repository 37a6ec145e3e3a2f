package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// LinkService implements business logic for a trip's important links.
type LinkService struct {
	trips repo.TripRepo
	links repo.LinkRepo
}

// NewLinkService constructs a LinkService backed by the provided repos.
func NewLinkService(trips repo.TripRepo, links repo.LinkRepo) *LinkService {
	return &LinkService{trips: trips, links: links}
}

// Create saves a link on an existing trip.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *LinkService) Create(ctx context.Context, l domain.Link) (domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, l.TripID); err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	result, err := s.links.Create(ctx, l)
	if err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	return result, nil
}

// ListByTrip returns the trip's links in the order they were added.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *LinkService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTrip: %w", err)
	}
	links, err := s.links.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTrip: %w", err)
	}
	return links, nil
}
