package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// ActivityService implements business logic for Activity operations.
// It holds the trips repo because every activity must fall inside its trip.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create schedules an activity on an existing trip.
// Returns domain.ErrNotFound if the trip does not exist.
// Returns domain.ErrInvalidRange if OccursAt is outside the trip window.
func (s *ActivityService) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, a.TripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	if !trip.Contains(a.OccursAt) {
		if a.OccursAt.Before(trip.StartsAt) {
			return domain.Activity{}, fmt.Errorf("%w: activity date cannot be before the trip start date", domain.ErrInvalidRange)
		}
		return domain.Activity{}, fmt.Errorf("%w: activity date cannot be after the trip end date", domain.ErrInvalidRange)
	}

	result, err := s.activities.Create(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns one activity of a trip.
// Returns domain.ErrNotFound if the trip or the activity does not exist, or
// the activity belongs to another trip.
func (s *ActivityService) GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error) {
	result, err := s.activities.GetByID(ctx, tripID, activityID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return result, nil
}

// ListByDay returns one entry per UTC calendar day of the trip, first day to
// last inclusive, each holding that day's activities in time order. Days with
// nothing scheduled are included with an empty list.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ActivityService) ListByDay(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityDay, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByDay: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByDay: %w", err)
	}
	return groupByDay(trip, activities), nil
}

// groupByDay assumes activities are already sorted by OccursAt. Activities
// outside the trip window (left behind after the dates were edited) are
// not listed. At most maxTripDays+1 days are built, even for a trip stored
// before the length cap existed.
func groupByDay(trip domain.Trip, activities []domain.Activity) []domain.ActivityDay {
	first := startOfDay(trip.StartsAt)
	last := startOfDay(trip.EndsAt)

	days := []domain.ActivityDay{}
	index := map[time.Time]int{}
	for day := first; !day.After(last) && len(days) <= maxTripDays; day = day.AddDate(0, 0, 1) {
		index[day] = len(days)
		days = append(days, domain.ActivityDay{Date: day, Activities: []domain.Activity{}})
	}

	for _, a := range activities {
		i, ok := index[startOfDay(a.OccursAt)]
		if !ok {
			continue
		}
		days[i].Activities = append(days[i].Activities, a)
	}
	return days
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
