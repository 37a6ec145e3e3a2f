package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// BeforeCommit runs inside the trip-creation transaction after every row has
// been written. Returning an error rolls the whole creation back.
type BeforeCommit func(trip domain.Trip, participants []domain.Participant) error

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a trip and its initial participants in one transaction and
	// returns the persisted records (with DB-generated ids and timestamps).
	// If hook is non-nil it runs before commit; a hook error aborts the insert.
	Create(ctx context.Context, trip domain.Trip, participants []domain.Participant, hook BeforeCommit) (domain.Trip, []domain.Participant, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// Update overwrites destination and dates and returns the updated record.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Confirm sets is_confirmed. changed is true only for the call that flipped
	// the flag, so concurrent confirmations agree on who goes first.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Confirm(ctx context.Context, id uuid.UUID) (trip domain.Trip, changed bool, err error)

	// Delete removes a trip by ID; participants, activities and links cascade.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, destination, starts_at, ends_at, is_confirmed, created_at, updated_at`

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip, participants []domain.Participant, hook BeforeCommit) (domain.Trip, []domain.Participant, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("repo.TripRepo.Create: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	const insertTrip = `
		INSERT INTO trips (destination, starts_at, ends_at)
		VALUES (@destination, @starts_at, @ends_at)
		RETURNING ` + tripColumns

	created, err := scanTrip(tx.QueryRow(ctx, insertTrip, pgx.NamedArgs{
		"destination": trip.Destination,
		"starts_at":   trip.StartsAt,
		"ends_at":     trip.EndsAt,
	}))
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("repo.TripRepo.Create: insert trip: %w", err)
	}

	// Participants go out as one batch: a single round trip regardless of
	// how many guests were invited.
	batch := &pgx.Batch{}
	for _, p := range participants {
		batch.Queue(insertParticipantSQL, participantArgs(created.ID, p))
	}
	results := tx.SendBatch(ctx, batch)
	stored := make([]domain.Participant, 0, len(participants))
	for range participants {
		p, err := scanParticipant(results.QueryRow())
		if err != nil {
			_ = results.Close()
			return domain.Trip{}, nil, fmt.Errorf("repo.TripRepo.Create: insert participant: %w", err)
		}
		stored = append(stored, p)
	}
	if err := results.Close(); err != nil {
		return domain.Trip{}, nil, fmt.Errorf("repo.TripRepo.Create: batch: %w", err)
	}

	if hook != nil {
		if err := hook(created, stored); err != nil {
			return domain.Trip{}, nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Trip{}, nil, fmt.Errorf("repo.TripRepo.Create: commit: %w", err)
	}
	return created, stored, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET destination = @destination,
		    starts_at   = @starts_at,
		    ends_at     = @ends_at,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":          trip.ID,
		"destination": trip.Destination,
		"starts_at":   trip.StartsAt,
		"ends_at":     trip.EndsAt,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, bool, error) {
	const q = `
		UPDATE trips
		SET is_confirmed = true,
		    updated_at   = now()
		WHERE id = @id AND NOT is_confirmed
		RETURNING ` + tripColumns

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err == nil {
		return result, true, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Trip{}, false, fmt.Errorf("repo.TripRepo.Confirm: %w", err)
	}

	// No row updated: either the trip is already confirmed or it does not exist.
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, false, fmt.Errorf("repo.TripRepo.Confirm: %w", err)
	}
	return existing, false, nil
}

func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTrip maps a single database row into a domain.Trip.
// Timestamps are normalised to UTC.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t  domain.Trip
		id pgtype.UUID
	)

	err := s.Scan(&id, &t.Destination, &t.StartsAt, &t.EndsAt, &t.IsConfirmed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Trip{}, mapError(err)
	}

	t.ID = uuid.UUID(id.Bytes)
	t.StartsAt = t.StartsAt.UTC()
	t.EndsAt = t.EndsAt.UTC()
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}
