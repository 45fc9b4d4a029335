// Package api holds the request and response types of the HTTP surface.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// SeatConflictResponse is the dedicated shape for a seat-already-booked
// rejection; the error names the first conflicting seat only.
type SeatConflictResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"system_info"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type Seat struct {
	Row  int    `json:"row"`
	Seat int    `json:"seat"`
	Type string `json:"type"`
}

type Hall struct {
	Id            int    `json:"id"`
	Name          string `json:"name"`
	Rows          int    `json:"rows"`
	SeatsPerRow   int    `json:"seatsPerRow"`
	StandardPrice int    `json:"standardPrice"`
	VipPrice      int    `json:"vipPrice"`
	Layout        []Seat `json:"layout"`
}

type HallListResponse struct {
	Halls []Hall `json:"halls"`
}

type CreateHallRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Rows          int    `json:"rows" validate:"required,min=1"`
	SeatsPerRow   int    `json:"seatsPerRow" validate:"required,min=1"`
	StandardPrice int    `json:"standardPrice" validate:"min=0"`
	VipPrice      int    `json:"vipPrice" validate:"min=0"`
	Layout        []Seat `json:"layout,omitempty" validate:"omitempty,dive"`
}

type UpdateHallRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Rows          *int    `json:"rows,omitempty" validate:"omitempty,min=1"`
	SeatsPerRow   *int    `json:"seatsPerRow,omitempty" validate:"omitempty,min=1"`
	StandardPrice *int    `json:"standardPrice,omitempty" validate:"omitempty,min=0"`
	VipPrice      *int    `json:"vipPrice,omitempty" validate:"omitempty,min=0"`
	Layout        []Seat  `json:"layout,omitempty" validate:"omitempty,dive"`
}

type Movie struct {
	Id       int    `json:"id"`
	Title    string `json:"title"`
	Poster   string `json:"poster,omitempty"`
	Synopsis string `json:"synopsis"`
	Duration int    `json:"duration"`
	Origin   string `json:"origin"`
}

type MovieListResponse struct {
	Movies []Movie `json:"movies"`
}

type CreateMovieRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Poster   string `json:"poster,omitempty"`
	Synopsis string `json:"synopsis" validate:"required"`
	Duration int    `json:"duration" validate:"required,min=1"`
	Origin   string `json:"origin" validate:"required"`
}

type ScreeningMovie struct {
	Id       int    `json:"id"`
	Title    string `json:"title"`
	Duration int    `json:"duration"`
}

type ScreeningHall struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type Screening struct {
	Id        int            `json:"id"`
	Date      string         `json:"date"`
	StartTime string         `json:"startTime"`
	Movie     ScreeningMovie `json:"movie"`
	Hall      ScreeningHall  `json:"hall"`
}

type ScreeningListResponse struct {
	Screenings []Screening `json:"screenings"`
}

type CreateScreeningRequest struct {
	MovieId   int    `json:"movieId" validate:"required,min=1"`
	HallId    int    `json:"hallId" validate:"required,min=1"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
}

// SeatMapSeat carries the persisted seat kind plus the derived availability;
// availability is computed from the booked-seat set and never stored.
type SeatMapSeat struct {
	Row       int    `json:"row"`
	Seat      int    `json:"seat"`
	Type      string `json:"type"`
	Available bool   `json:"available"`
}

type SeatRow struct {
	Row   int           `json:"row"`
	Seats []SeatMapSeat `json:"seats"`
}

type SeatMapResponse struct {
	ScreeningId   int       `json:"screening_id"`
	HallId        int       `json:"hall_id"`
	HallName      string    `json:"hall_name"`
	StandardPrice int       `json:"standardPrice"`
	VipPrice      int       `json:"vipPrice"`
	SeatRows      []SeatRow `json:"seat_rows"`
}

type BookingSeat struct {
	Row  int    `json:"row" validate:"required,min=1"`
	Seat int    `json:"seat" validate:"required,min=1"`
	Type string `json:"type" validate:"required,seatkind"`
}

type CreateBookingRequest struct {
	ScreeningId int           `json:"screeningId" validate:"required,min=1"`
	Seats       []BookingSeat `json:"seats" validate:"required,min=1,dive"`
	Email       string        `json:"email,omitempty" validate:"omitempty,email"`
}

type CreateBookingResponse struct {
	BookingCode string `json:"booking_code"`
	QrCodeUrl   string `json:"qr_code_url"`
}

type BookingDetailResponse struct {
	BookingCode string    `json:"booking_code"`
	ScreeningId int       `json:"screening_id"`
	Movie       string    `json:"movie"`
	Hall        string    `json:"hall"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	Seats       []Seat    `json:"seats"`
	TotalPrice  int       `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
}

type SalesResponse struct {
	Open bool `json:"open"`
}

type SetSalesRequest struct {
	Open *bool `json:"open" validate:"required"`
}
