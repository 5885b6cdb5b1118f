package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Domenick1991/moviebooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingRepository is the persistence adapter: one collection of booking
// documents, append-only, with a most-recent query. Records are never updated
// or deleted.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	Last(ctx context.Context) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// Create inserts the booking and fills in the store-assigned id and creation
// time. The serial id carries the insertion order that decides "last".
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	seats, err := json.Marshal(booking.Seats)
	if err != nil {
		return fmt.Errorf("encode seats: %w", err)
	}

	err = r.db.QueryRow(ctx, `INSERT INTO bookings (reference, movie, slot, seats)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`, booking.Reference, booking.Movie, booking.Slot, seats).
		Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return &domain.StorageError{Op: "create booking", Err: err}
	}
	return nil
}

// Last returns the most recently created booking, or domain.ErrNoBooking when
// the collection is empty.
func (r *PGBookingRepository) Last(ctx context.Context) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT id, reference, movie, slot, seats, created_at FROM bookings ORDER BY id DESC LIMIT 1`)

	var b domain.Booking
	var seats []byte
	if err := row.Scan(&b.ID, &b.Reference, &b.Movie, &b.Slot, &seats, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoBooking
		}
		return nil, &domain.StorageError{Op: "query last booking", Err: err}
	}
	if err := json.Unmarshal(seats, &b.Seats); err != nil {
		return nil, &domain.StorageError{Op: "decode seats", Err: err}
	}
	b.Seats = b.Seats.Normalize()
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
