package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ParticipantRepo defines the persistence operations for Participants.
// The initial participant list is written by TripRepo.Create; this repo
// covers everything after that.
type ParticipantRepo interface {
	// Create inserts a single participant (an invitation added after creation).
	// Returns domain.ErrNotFound if the trip does not exist.
	Create(ctx context.Context, p domain.Participant) (domain.Participant, error)

	// GetByID retrieves a participant by primary key.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)

	// ListByTripID returns the owner first, then invitees in invitation order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// Confirm sets is_confirmed and returns the updated record.
	// Returns domain.ErrNotFound if it does not exist.
	Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error)
}

type pgParticipantRepo struct {
	db db
}

// NewParticipantRepo constructs a ParticipantRepo backed by the provided db connection.
func NewParticipantRepo(db db) ParticipantRepo {
	return &pgParticipantRepo{db: db}
}

const participantColumns = `id, trip_id, name, email, is_owner, is_confirmed, created_at`

// insertParticipantSQL is shared with TripRepo.Create, which queues it once
// per participant in a batch.
const insertParticipantSQL = `
	INSERT INTO participants (trip_id, name, email, is_owner, is_confirmed)
	VALUES (@trip_id, @name, @email, @is_owner, @is_confirmed)
	RETURNING ` + participantColumns

// participantArgs binds p for insertParticipantSQL. An empty name is stored
// as NULL so "not provided" stays distinguishable from a real value.
func participantArgs(tripID uuid.UUID, p domain.Participant) pgx.NamedArgs {
	return pgx.NamedArgs{
		"trip_id":      tripID,
		"name":         pgtype.Text{String: p.Name, Valid: p.Name != ""},
		"email":        p.Email,
		"is_owner":     p.IsOwner,
		"is_confirmed": p.IsConfirmed,
	}
}

func (r *pgParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	result, err := scanParticipant(r.db.QueryRow(ctx, insertParticipantSQL, participantArgs(p.TripID, p)))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	const q = `SELECT ` + participantColumns + ` FROM participants WHERE id = @id`

	result, err := scanParticipant(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	const q = `
		SELECT ` + participantColumns + `
		FROM participants
		WHERE trip_id = @trip_id
		ORDER BY is_owner DESC, created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: %w", err)
	}
	out, err := collect(rows, scanParticipant)
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: %w", err)
	}
	return out, nil
}

func (r *pgParticipantRepo) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	const q = `
		UPDATE participants
		SET is_confirmed = true
		WHERE id = @id
		RETURNING ` + participantColumns

	result, err := scanParticipant(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Confirm: %w", err)
	}
	return result, nil
}

func scanParticipant(s scanner) (domain.Participant, error) {
	var (
		p      domain.Participant
		id     pgtype.UUID
		tripID pgtype.UUID
		name   pgtype.Text
	)
	err := s.Scan(&id, &tripID, &name, &p.Email, &p.IsOwner, &p.IsConfirmed, &p.CreatedAt)
	if err != nil {
		return domain.Participant{}, mapError(err)
	}
	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(tripID.Bytes)
	p.Name = name.String
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}
