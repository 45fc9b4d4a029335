package repository

import (
	"context"
	"errors"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kinosvet/cinema-booking/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Create commits the booking atomically: it locks the screening row, checks
// the requested seat keys against the booked set under the lock, inserts the
// booking and merges the keys into the set. Conflicting bookings serialize
// on the row lock, so at most one of two overlapping requests commits.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking, seatKeys []string) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		// Bounded wait on the screening lock; hitting the timeout surfaces
		// as a transient error the engine may retry.
		_, err := tx.Exec(ctx, `SET LOCAL lock_timeout = '3s'`)
		if err != nil {
			return err
		}

		var bookedSeats []string

		query := `SELECT booked_seats FROM screenings WHERE id = $1 FOR UPDATE`

		err = tx.QueryRow(ctx, query, booking.ScreeningID).Scan(&bookedSeats)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		for _, key := range seatKeys {
			if slices.Contains(bookedSeats, key) {
				return domain.SeatConflictError{SeatKey: key}
			}
		}

		query = `
			INSERT INTO bookings (screening_id, seats, total_price, booking_code, email)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`

		err = tx.QueryRow(ctx,
			query,
			booking.ScreeningID,
			booking.Seats,
			booking.TotalPrice,
			booking.Code,
			booking.Email).Scan(&booking.ID, &booking.CreatedAt)

		if err != nil {
			if isUniqueViolation(err, "bookings_booking_code_key") {
				return domain.ErrDuplicateBookingCode
			}

			return err
		}

		query = `UPDATE screenings SET booked_seats = $1, updated_at = NOW() WHERE id = $2`

		_, err = tx.Exec(ctx, query, append(bookedSeats, seatKeys...), booking.ScreeningID)

		return err
	})

	return classifyTransient(err)
}

func (p *PostgresBookingRepository) GetByCode(ctx context.Context, code string) (*domain.BookingDetail, error) {
	query := `
		SELECT
			b.id,
			b.screening_id,
			b.seats,
			b.total_price,
			b.booking_code,
			b.email,
			b.created_at,
			m.title,
			h.name,
			s.date,
			s.start_time
		FROM bookings b
		JOIN screenings s ON b.screening_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN halls h ON s.hall_id = h.id
		WHERE b.booking_code = $1
	`

	var detail domain.BookingDetail
	var startTime pgtype.Time

	err := p.db.QueryRow(ctx, query, code).Scan(
		&detail.ID,
		&detail.ScreeningID,
		&detail.Seats,
		&detail.TotalPrice,
		&detail.Code,
		&detail.Email,
		&detail.CreatedAt,
		&detail.MovieTitle,
		&detail.HallName,
		&detail.Date,
		&startTime,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	detail.StartTime = fromPgTime(startTime)

	return &detail, nil
}

// DeleteByCode cancels a booking and releases its seats back into the
// screening's availability, under the same row lock that bookings take.
func (p *PostgresBookingRepository) DeleteByCode(ctx context.Context, code string) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `SET LOCAL lock_timeout = '3s'`)
		if err != nil {
			return err
		}

		var screeningId int
		var seats []domain.SeatSelection

		query := `SELECT screening_id, seats FROM bookings WHERE booking_code = $1`

		err = tx.QueryRow(ctx, query, code).Scan(&screeningId, &seats)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		var bookedSeats []string

		query = `SELECT booked_seats FROM screenings WHERE id = $1 FOR UPDATE`

		err = tx.QueryRow(ctx, query, screeningId).Scan(&bookedSeats)
		if err != nil {
			return err
		}

		released := make(map[string]bool, len(seats))
		for _, seat := range seats {
			released[seat.Key()] = true
		}

		remaining := slices.DeleteFunc(bookedSeats, func(key string) bool {
			return released[key]
		})

		query = `UPDATE screenings SET booked_seats = $1, updated_at = NOW() WHERE id = $2`

		_, err = tx.Exec(ctx, query, remaining, screeningId)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM bookings WHERE booking_code = $1`, code)

		return err
	})

	return classifyTransient(err)
}
