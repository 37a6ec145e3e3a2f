package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// JSON shapes returned by the API. Field names are snake_case except for the
// created-resource ids, which keep the camelCase the web client expects.

type tripResponse struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		StartsAt:    t.StartsAt,
		EndsAt:      t.EndsAt,
		IsConfirmed: t.IsConfirmed,
	}
}

type activityResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

func activityToResponse(a domain.Activity) activityResponse {
	return activityResponse{ID: a.ID, Title: a.Title, OccursAt: a.OccursAt}
}

type activityDayResponse struct {
	Date       time.Time          `json:"date"`
	Activities []activityResponse `json:"activities"`
}

func activityDaysToResponse(days []domain.ActivityDay) []activityDayResponse {
	out := make([]activityDayResponse, len(days))
	for i, d := range days {
		acts := make([]activityResponse, len(d.Activities))
		for j, a := range d.Activities {
			acts[j] = activityToResponse(a)
		}
		out[i] = activityDayResponse{Date: d.Date, Activities: acts}
	}
	return out
}

type participantResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        *string   `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
	IsOwner     bool      `json:"is_owner"`
}

func participantToResponse(p domain.Participant) participantResponse {
	resp := participantResponse{
		ID:          p.ID,
		Email:       p.Email,
		IsConfirmed: p.IsConfirmed,
		IsOwner:     p.IsOwner,
	}
	if p.Name != "" {
		resp.Name = &p.Name
	}
	return resp
}

type linkResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	URL   string    `json:"url"`
}
