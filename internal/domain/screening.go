package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SeatKey builds the canonical "{row}-{seat}" identifier. This string is the
// only form used for seat equality: the booked-seat set, the wire format and
// conflict reporting all go through it, never through structural comparison
// of row/seat pairs.
func SeatKey(row, seat int) string {
	return fmt.Sprintf("%d-%d", row, seat)
}

// ParseSeatKey is the inverse of SeatKey.
func ParseSeatKey(key string) (row, seat int, err error) {
	left, right, found := strings.Cut(key, "-")
	if !found {
		return 0, 0, fmt.Errorf("malformed seat key %q", key)
	}

	row, err = strconv.Atoi(left)
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("malformed seat key %q", key)
	}

	seat, err = strconv.Atoi(right)
	if err != nil || seat < 1 {
		return 0, 0, fmt.Errorf("malformed seat key %q", key)
	}

	return row, seat, nil
}

// Screening is one scheduled showing of a movie in a hall. BookedSeats is
// the set of taken seat keys; it is mutated exclusively by the booking
// engine's atomic commit.
type Screening struct {
	ID          int
	MovieID     int
	HallID      int
	Date        time.Time     // calendar date, midnight UTC
	StartTime   time.Duration // clock time as offset from midnight
	BookedSeats []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StartsAt combines the calendar date and the start time.
func (s *Screening) StartsAt() time.Time {
	return s.Date.Add(s.StartTime)
}

func (s *Screening) IsBooked(row, seat int) bool {
	key := SeatKey(row, seat)

	for _, booked := range s.BookedSeats {
		if booked == key {
			return true
		}
	}

	return false
}

// BookedSet returns BookedSeats as a lookup set.
func (s *Screening) BookedSet() map[string]bool {
	set := make(map[string]bool, len(s.BookedSeats))
	for _, key := range s.BookedSeats {
		set[key] = true
	}

	return set
}

// ScreeningDetails is a screening with its hall and movie eager-loaded, as
// the booking flow and the seat map need them.
type ScreeningDetails struct {
	Screening
	Hall          Hall
	MovieTitle    string
	MovieDuration int
}

type ScreeningRepository interface {
	GetAll(ctx context.Context) ([]ScreeningDetails, error)
	GetWithHall(ctx context.Context, id int) (*ScreeningDetails, error)
	Create(ctx context.Context, screening *Screening) error
	Delete(ctx context.Context, id int) error
}

// SalesGate is the global switch admitting or blocking all new bookings.
type SalesGate interface {
	IsOpen(ctx context.Context) (bool, error)
	SetOpen(ctx context.Context, open bool) error
}
