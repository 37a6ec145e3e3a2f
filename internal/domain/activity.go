package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a scheduled event inside a trip's date window.
type Activity struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Title     string
	OccursAt  time.Time
	CreatedAt time.Time
}

// ActivityDay groups the activities that fall on one calendar day of a trip.
// Date is midnight UTC of that day.
type ActivityDay struct {
	Date       time.Time
	Activities []Activity
}
