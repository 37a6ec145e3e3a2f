package domain

import (
	"time"

	"github.com/google/uuid"
)

// Link is an important URL saved against a trip (bookings, maps, tickets).
type Link struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Title     string
	URL       string
	CreatedAt time.Time
}
