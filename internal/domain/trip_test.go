package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
)

func TestTrip_Contains(t *testing.T) {
	trip := domain.Trip{
		StartsAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	assert.False(t, trip.Contains(time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)))
	assert.True(t, trip.Contains(trip.StartsAt), "start bound is inclusive")
	assert.True(t, trip.Contains(time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)))
	assert.True(t, trip.Contains(trip.EndsAt), "end bound is inclusive")
	assert.False(t, trip.Contains(time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)))
}

func TestNewTrip_Participants(t *testing.T) {
	n := domain.NewTrip{
		OwnerName:      "Ana",
		OwnerEmail:     "a@b.com",
		EmailsToInvite: []string{"x@b.com", "a@b.com"},
	}

	got := n.Participants()

	require.Len(t, got, 3)
	assert.Equal(t, domain.Participant{Name: "Ana", Email: "a@b.com", IsOwner: true, IsConfirmed: true}, got[0])
	for _, p := range got[1:] {
		assert.False(t, p.IsOwner)
		assert.False(t, p.IsConfirmed)
		assert.Empty(t, p.Name)
	}
	// The owner's address may also appear as an invitee; it is kept as given.
	assert.Equal(t, "a@b.com", got[2].Email)
}
