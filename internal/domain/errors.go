package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrEditConflict         = errors.New("edit conflict")
	ErrDuplicateHallName    = errors.New("hall name already in use")
	ErrDuplicateMovieTitle  = errors.New("movie title already in use")
	ErrHallInUse            = errors.New("hall is referenced by existing screenings")
	ErrSalesClosed          = errors.New("ticket sales are closed")
	ErrScreeningEnded       = errors.New("screening already ended")
	ErrDuplicateBookingCode = errors.New("booking code already exists")
)

// SeatConflictError reports the first requested seat that is already taken.
// The whole booking request is rejected; there is no partial booking of the
// non-conflicting subset.
type SeatConflictError struct {
	SeatKey string
}

func (e SeatConflictError) Error() string {
	return fmt.Sprintf("seat %s is already booked", e.SeatKey)
}

// InvalidBookingError marks a malformed or out-of-range booking request. It
// is never retriable; the caller must correct the request.
type InvalidBookingError struct {
	Reason string
}

func (e InvalidBookingError) Error() string {
	return e.Reason
}

// TransientError wraps storage failures that are safe to retry, such as lock
// timeouts and serialization failures. Seat conflicts are never transient.
type TransientError struct {
	Err error
}

func (e TransientError) Error() string {
	return fmt.Sprintf("transient storage error: %v", e.Err)
}

func (e TransientError) Unwrap() error {
	return e.Err
}

func IsTransient(err error) bool {
	var t TransientError
	return errors.As(err, &t)
}
