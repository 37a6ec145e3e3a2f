package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/validation"
)

// Minimum lengths for free-text fields.
const (
	minDestinationLen = 4
	minTitleLen       = 4
)

// Request bodies are decoded into these types and then checked field by
// field. Dates travel as strings so a bad value becomes a field error rather
// than a decode failure.

type createTripRequest struct {
	Destination    string   `json:"destination"`
	StartsAt       string   `json:"starts_at"`
	EndsAt         string   `json:"ends_at"`
	OwnerName      string   `json:"owner_name"`
	OwnerEmail     string   `json:"owner_email"`
	EmailsToInvite []string `json:"emails_to_invite"`
}

func (req createTripRequest) toDomain() (domain.NewTrip, error) {
	var c validation.Checker
	c.MinLength("destination", req.Destination, minDestinationLen)
	startsAt := c.Timestamp("starts_at", req.StartsAt)
	endsAt := c.Timestamp("ends_at", req.EndsAt)
	c.Required("owner_name", req.OwnerName)
	c.Email("owner_email", req.OwnerEmail)
	for i, email := range req.EmailsToInvite {
		c.Email(fmt.Sprintf("emails_to_invite[%d]", i), email)
	}
	if err := c.Err(); err != nil {
		return domain.NewTrip{}, err
	}

	return domain.NewTrip{
		Destination:    strings.TrimSpace(req.Destination),
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		OwnerName:      strings.TrimSpace(req.OwnerName),
		OwnerEmail:     req.OwnerEmail,
		EmailsToInvite: req.EmailsToInvite,
	}, nil
}

type updateTripRequest struct {
	Destination string `json:"destination"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
}

func (req updateTripRequest) toDomain(id uuid.UUID) (domain.Trip, error) {
	var c validation.Checker
	c.MinLength("destination", req.Destination, minDestinationLen)
	startsAt := c.Timestamp("starts_at", req.StartsAt)
	endsAt := c.Timestamp("ends_at", req.EndsAt)
	if err := c.Err(); err != nil {
		return domain.Trip{}, err
	}
	return domain.Trip{
		ID:          id,
		Destination: strings.TrimSpace(req.Destination),
		StartsAt:    startsAt,
		EndsAt:      endsAt,
	}, nil
}

type createActivityRequest struct {
	Title    string `json:"title"`
	OccursAt string `json:"occurs_at"`
}

func (req createActivityRequest) toDomain(tripID uuid.UUID) (domain.Activity, error) {
	var c validation.Checker
	c.MinLength("title", req.Title, minTitleLen)
	occursAt := c.Timestamp("occurs_at", req.OccursAt)
	if err := c.Err(); err != nil {
		return domain.Activity{}, err
	}
	return domain.Activity{TripID: tripID, Title: strings.TrimSpace(req.Title), OccursAt: occursAt}, nil
}

type inviteRequest struct {
	Email string `json:"email"`
}

func (req inviteRequest) validate() error {
	var c validation.Checker
	c.Email("email", req.Email)
	return c.Err()
}

type createLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (req createLinkRequest) toDomain(tripID uuid.UUID) (domain.Link, error) {
	var c validation.Checker
	c.MinLength("title", req.Title, minTitleLen)
	c.URL("url", req.URL)
	if err := c.Err(); err != nil {
		return domain.Link{}, err
	}
	return domain.Link{TripID: tripID, Title: strings.TrimSpace(req.Title), URL: req.URL}, nil
}

// pathUUID binds the named chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var c validation.Checker
	id := c.UUID(name, chi.URLParam(r, name))
	return id, c.Err()
}
