package domain

import (
	"context"
	"time"
)

// SeatSelection is one seat of a booking request, carrying the kind the
// client selected. Disabled seats are rejected before a selection is priced.
type SeatSelection struct {
	Row  int      `json:"row"`
	Seat int      `json:"seat"`
	Kind SeatKind `json:"type"`
}

func (s SeatSelection) Key() string {
	return SeatKey(s.Row, s.Seat)
}

// Booking is an immutable committed reservation. TotalPrice is the sum of
// the per-kind hall prices for the selected seats, fixed at booking time.
type Booking struct {
	ID          int
	ScreeningID int
	Seats       []SeatSelection
	TotalPrice  int
	Code        string
	Email       string
	CreatedAt   time.Time
}

// BookingDetail is a booking joined with its screening, movie and hall, as
// needed to render a ticket.
type BookingDetail struct {
	Booking
	MovieTitle string
	HallName   string
	Date       time.Time
	StartTime  time.Duration
}

// QRPayload is the JSON document encoded into a ticket's QR code.
type QRPayload struct {
	BookingCode string          `json:"booking_code"`
	ScreeningID int             `json:"screening_id"`
	Movie       string          `json:"movie"`
	Hall        string          `json:"hall"`
	Date        string          `json:"date"`
	StartTime   string          `json:"start_time"`
	Seats       []SeatSelection `json:"seats"`
	TotalPrice  int             `json:"total_price"`
	Timestamp   time.Time       `json:"timestamp"`
}

// QRPayload derives the ticket payload for this booking. The timestamp is
// the generation time, not the booking time.
func (d *BookingDetail) QRPayload(now time.Time) QRPayload {
	return QRPayload{
		BookingCode: d.Code,
		ScreeningID: d.ScreeningID,
		Movie:       d.MovieTitle,
		Hall:        d.HallName,
		Date:        d.Date.Format("2006-01-02"),
		StartTime:   formatStartTime(d.StartTime),
		Seats:       d.Seats,
		TotalPrice:  d.TotalPrice,
		Timestamp:   now.UTC(),
	}
}

func formatStartTime(offset time.Duration) string {
	return time.Time{}.Add(offset).Format("15:04")
}

type BookingRepository interface {
	// Create commits the booking and appends seatKeys to the screening's
	// booked-seat set as one atomic unit. It returns SeatConflictError if
	// any key is already taken, ErrDuplicateBookingCode on a code
	// collision, and TransientError for retriable storage failures.
	Create(ctx context.Context, booking *Booking, seatKeys []string) error
	GetByCode(ctx context.Context, code string) (*BookingDetail, error)
	DeleteByCode(ctx context.Context, code string) error
}
