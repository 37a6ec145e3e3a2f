package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a person attached to a trip, either its owner or an invitee.
// Name is empty for invitees who have not introduced themselves yet.
type Participant struct {
	ID          uuid.UUID
	TripID      uuid.UUID
	Name        string
	Email       string
	IsOwner     bool
	IsConfirmed bool
	CreatedAt   time.Time
}
