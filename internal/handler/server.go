// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, etc.) but share the same Server struct so they
// can access its dependencies. Routes wires them onto a chi router.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, in domain.NewTrip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityServicer defines the business operations the activity handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error)
	ListByDay(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityDay, error)
}

// ParticipantServicer defines the business operations the participant handlers depend on.
type ParticipantServicer interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
}

// LinkServicer defines the business operations the link handlers depend on.
type LinkServicer interface {
	Create(ctx context.Context, l domain.Link) (domain.Link, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

// Pinger is satisfied by *pgxpool.Pool and backs the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options carries the non-service dependencies of Server.
type Options struct {
	// WebBaseURL is where confirmation links redirect the browser to.
	WebBaseURL string

	// DB is pinged by GET /readyz. Nil means always ready.
	DB Pinger
}

// Server holds every handler dependency.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips        TripServicer
	activities   ActivityServicer
	participants ParticipantServicer
	links        LinkServicer
	webBaseURL   string
	db           Pinger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, activities ActivityServicer, participants ParticipantServicer, links LinkServicer, opts Options) *Server {
	return &Server{
		trips:        trips,
		activities:   activities,
		participants: participants,
		links:        links,
		webBaseURL:   opts.WebBaseURL,
		db:           opts.DB,
	}
}
