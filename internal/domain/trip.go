// Package domain contains the core data types for the trip planner.
// This package has no dependencies on other internal packages and is imported
// by every layer (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level aggregate. Participants, activities and links all
// belong to exactly one trip and are removed with it.
type Trip struct {
	ID          uuid.UUID
	Destination string
	StartsAt    time.Time
	EndsAt      time.Time
	IsConfirmed bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Contains reports whether t lies inside the trip window. Both bounds are inclusive.
func (tr Trip) Contains(t time.Time) bool {
	return !t.Before(tr.StartsAt) && !t.After(tr.EndsAt)
}

// NewTrip carries everything needed to create a trip together with its
// initial participant list.
type NewTrip struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	OwnerName      string
	OwnerEmail     string
	EmailsToInvite []string
}

// Participants expands the request into the rows persisted alongside the trip:
// the confirmed owner first, then one unconfirmed row per invited email.
// Invited emails are kept as given; duplicates of the owner are not removed.
func (n NewTrip) Participants() []Participant {
	out := make([]Participant, 0, len(n.EmailsToInvite)+1)
	out = append(out, Participant{
		Name:        n.OwnerName,
		Email:       n.OwnerEmail,
		IsOwner:     true,
		IsConfirmed: true,
	})
	for _, email := range n.EmailsToInvite {
		out = append(out, Participant{Email: email})
	}
	return out
}
