// Package booking implements the reservation engine: the only mutating
// entry point for seat reservations. It validates a requested seat set
// against the hall layout and the screening's booked-seat set, computes the
// total price and commits the booking atomically.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kinosvet/cinema-booking/internal/domain"
)

const (
	defaultMaxAttempts  = 3
	defaultRetryBackoff = 50 * time.Millisecond
)

type Engine struct {
	screenings domain.ScreeningRepository
	bookings   domain.BookingRepository
	gate       domain.SalesGate
	logger     *slog.Logger

	now          func() time.Time
	newCode      func() string
	maxAttempts  int
	retryBackoff time.Duration
}

func NewEngine(
	screenings domain.ScreeningRepository,
	bookings domain.BookingRepository,
	gate domain.SalesGate,
	logger *slog.Logger) *Engine {

	return &Engine{
		screenings:   screenings,
		bookings:     bookings,
		gate:         gate,
		logger:       logger,
		now:          time.Now,
		newCode:      NewCode,
		maxAttempts:  defaultMaxAttempts,
		retryBackoff: defaultRetryBackoff,
	}
}

type CreateBookingRequest struct {
	ScreeningID int
	Seats       []domain.SeatSelection
	Email       string
}

// Result carries the committed booking together with the derived QR payload.
type Result struct {
	Booking domain.Booking
	QR      domain.QRPayload
}

// CreateBooking runs one booking attempt end to end. A rejected booking
// leaves the screening's booked-seat set and the bookings table untouched;
// only transient storage failures and code collisions are retried, a seat
// conflict never is.
func (e *Engine) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Result, error) {
	open, err := e.gate.IsOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check sales gate: %w", err)
	}

	if !open {
		return nil, domain.ErrSalesClosed
	}

	details, err := e.screenings.GetWithHall(ctx, req.ScreeningID)
	if err != nil {
		return nil, err
	}

	if !details.StartsAt().After(e.now()) {
		return nil, domain.ErrScreeningEnded
	}

	seatKeys, err := e.validateSeats(details, req.Seats)
	if err != nil {
		return nil, err
	}

	// Fast-path conflict check against the loaded snapshot; the commit
	// re-checks under the screening row lock.
	booked := details.BookedSet()
	for _, key := range seatKeys {
		if booked[key] {
			return nil, domain.SeatConflictError{SeatKey: key}
		}
	}

	totalPrice := 0
	for _, seat := range req.Seats {
		totalPrice += details.Hall.PriceOf(seat.Kind)
	}

	booking := domain.Booking{
		ScreeningID: details.ID,
		Seats:       req.Seats,
		TotalPrice:  totalPrice,
		Email:       req.Email,
	}

	err = e.commit(ctx, &booking, seatKeys)
	if err != nil {
		return nil, err
	}

	detail := domain.BookingDetail{
		Booking:    booking,
		MovieTitle: details.MovieTitle,
		HallName:   details.Hall.Name,
		Date:       details.Date,
		StartTime:  details.StartTime,
	}

	return &Result{
		Booking: booking,
		QR:      detail.QRPayload(e.now()),
	}, nil
}

func (e *Engine) validateSeats(details *domain.ScreeningDetails, seats []domain.SeatSelection) ([]string, error) {
	if len(seats) == 0 {
		return nil, domain.InvalidBookingError{Reason: "at least one seat must be selected"}
	}

	seatKeys := make([]string, 0, len(seats))
	seen := make(map[string]bool, len(seats))

	for _, seat := range seats {
		key := seat.Key()

		if !seat.Kind.Bookable() {
			return nil, domain.InvalidBookingError{
				Reason: fmt.Sprintf("seat %s has invalid type %q", key, seat.Kind),
			}
		}

		descriptor, ok := details.Hall.SeatAt(seat.Row, seat.Seat)
		if !ok {
			return nil, domain.InvalidBookingError{
				Reason: fmt.Sprintf("seat %s is outside the hall's %dx%d grid", key, details.Hall.Rows, details.Hall.SeatsPerRow),
			}
		}

		if descriptor.Kind == domain.SeatDisabled {
			return nil, domain.InvalidBookingError{
				Reason: fmt.Sprintf("seat %s is not available for booking", key),
			}
		}

		if seen[key] {
			return nil, domain.InvalidBookingError{
				Reason: fmt.Sprintf("seat %s is selected more than once", key),
			}
		}

		seen[key] = true
		seatKeys = append(seatKeys, key)
	}

	return seatKeys, nil
}

// commit drives the atomic persistence step with a bounded retry budget.
// Code collisions get a fresh code; transient storage failures back off and
// try again; everything else surfaces immediately.
func (e *Engine) commit(ctx context.Context, booking *domain.Booking, seatKeys []string) error {
	var err error

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		booking.Code = e.newCode()

		err = e.bookings.Create(ctx, booking, seatKeys)
		if err == nil {
			return nil
		}

		switch {
		case errors.Is(err, domain.ErrDuplicateBookingCode):
			e.logger.Warn("booking code collision, regenerating", "code", booking.Code)

		case domain.IsTransient(err):
			e.logger.Warn("transient storage failure during booking commit",
				"screening_id", booking.ScreeningID,
				"attempt", attempt,
				"error", err,
			)

			select {
			case <-time.After(e.retryBackoff):
			case <-ctx.Done():
				return domain.TransientError{Err: ctx.Err()}
			}

		default:
			return err
		}
	}

	return err
}
