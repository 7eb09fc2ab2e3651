// Package repo contains all database access logic for the TripMapper backend.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripmapper/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips. Trips are
// append-only: there is no update or delete.
//
// The service layer depends on this interface, not the Postgres
// implementation, so it can be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a finalized trip and returns the persisted record.
	// A fresh ID is assigned when trip.ID is empty.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by ID.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id string) (domain.Trip, error)

	// List returns all trips across all users (admin scope), most recent
	// start time first.
	List(ctx context.Context) ([]domain.Trip, error)

	// ListByUser returns one user's trips, most recent start time first.
	ListByUser(ctx context.Context, userID string) ([]domain.Trip, error)

	// ListSince returns all trips with start_time >= sinceMs, most recent
	// first. Used by the live admin feed to poll cheaply.
	ListSince(ctx context.Context, sinceMs int64) ([]domain.Trip, error)

	// ListPaged returns one page of trips (all users when userID is empty)
	// and the total count for the scope.
	ListPaged(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Trip, int64, error)
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

const tripColumns = `id, user_id, start_time, end_time, start_location, end_location,
		start_lat, start_lng, end_lat, end_lng, mode, purpose, co_travellers, distance`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if trip.ID == "" {
		trip.ID = domain.NewTripID()
	}

	const q = `
		INSERT INTO trips (id, user_id, start_time, end_time, start_location, end_location,
			start_lat, start_lng, end_lat, end_lng, mode, purpose, co_travellers, distance)
		VALUES (@id, @user_id, @start_time, @end_time, @start_location, @end_location,
			@start_lat, @start_lng, @end_lat, @end_lng, @mode, @purpose, @co_travellers, @distance)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":             trip.ID,
		"user_id":        trip.UserID,
		"start_time":     trip.StartTime,
		"end_time":       trip.EndTime,
		"start_location": trip.StartLocation,
		"end_location":   trip.EndLocation,
		"mode":           string(trip.Mode),
		"purpose":        string(trip.Purpose),
		"co_travellers":  trip.CoTravellers,
		"distance":       trip.Distance,
	}
	args["start_lat"], args["start_lng"] = coordArgs(trip.StartCoords)
	args["end_lat"], args["end_lng"] = coordArgs(trip.EndCoords)

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips ordered by start_time descending (most recent first).
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips ORDER BY start_time DESC`

	trips, err := r.queryTrips(ctx, q, nil)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

// ListByUser returns one user's trips ordered by start_time descending.
func (r *pgTripRepo) ListByUser(ctx context.Context, userID string) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips
		WHERE user_id = @user_id
		ORDER BY start_time DESC`

	trips, err := r.queryTrips(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByUser: %w", err)
	}
	return trips, nil
}

// ListSince returns all trips with start_time at or after sinceMs.
func (r *pgTripRepo) ListSince(ctx context.Context, sinceMs int64) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips
		WHERE start_time >= @since
		ORDER BY start_time DESC`

	trips, err := r.queryTrips(ctx, q, pgx.NamedArgs{"since": sinceMs})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListSince: %w", err)
	}
	return trips, nil
}

// ListPaged returns one page of trips for the scope plus the total count.
// An empty userID selects all users (admin scope).
func (r *pgTripRepo) ListPaged(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips
		WHERE (@user_id = '' OR user_id = @user_id)
		ORDER BY start_time DESC
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{"user_id": userID, "limit": p.Limit, "offset": p.Offset()}
	trips, err := r.queryTrips(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}

	const countQ = `SELECT count(*) FROM trips WHERE (@user_id = '' OR user_id = @user_id)`
	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": userID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: count: %w", err)
	}
	return trips, total, nil
}

func (r *pgTripRepo) queryTrips(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Trip, error) {
	var rows pgx.Rows
	var err error
	if args == nil {
		rows, err = r.db.Query(ctx, q)
	} else {
		rows, err = r.db.Query(ctx, q, args)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return trips, nil
}

// coordArgs splits an optional coordinate pair into nullable lat/lng args.
func coordArgs(c *domain.Coordinates) (any, any) {
	if c == nil {
		return nil, nil
	}
	return c.Lat, c.Lng
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the nullable coordinate columns.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t                  domain.Trip
		mode, purpose      string
		startLat, startLng pgtype.Float8
		endLat, endLng     pgtype.Float8
	)

	err := s.Scan(&t.ID, &t.UserID, &t.StartTime, &t.EndTime,
		&t.StartLocation, &t.EndLocation,
		&startLat, &startLng, &endLat, &endLng,
		&mode, &purpose, &t.CoTravellers, &t.Distance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.Mode = domain.Mode(mode)
	t.Purpose = domain.Purpose(purpose)
	if startLat.Valid && startLng.Valid {
		t.StartCoords = &domain.Coordinates{Lat: startLat.Float64, Lng: startLng.Float64}
	}
	if endLat.Valid && endLng.Valid {
		t.EndCoords = &domain.Coordinates{Lat: endLat.Float64, Lng: endLng.Float64}
	}

	return t, nil
}
