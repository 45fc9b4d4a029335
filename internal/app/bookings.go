package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kinosvet/cinema-booking/api"
	"github.com/kinosvet/cinema-booking/internal/booking"
	"github.com/kinosvet/cinema-booking/internal/domain"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	seats := make([]domain.SeatSelection, 0, len(input.Seats))
	for _, seat := range input.Seats {
		seats = append(seats, domain.SeatSelection{
			Row:  seat.Row,
			Seat: seat.Seat,
			Kind: domain.SeatKind(seat.Type),
		})
	}

	result, err := app.engine.CreateBooking(r.Context(), booking.CreateBookingRequest{
		ScreeningID: input.ScreeningId,
		Seats:       seats,
		Email:       input.Email,
	})

	if err != nil {
		var conflictErr domain.SeatConflictError
		var invalidErr domain.InvalidBookingError

		switch {
		case errors.Is(err, domain.ErrSalesClosed):
			app.salesClosedResponse(w, r)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrScreeningEnded):
			app.screeningEndedResponse(w, r)
		case errors.As(err, &conflictErr):
			app.seatConflictResponse(w, r, conflictErr.SeatKey)
		case errors.As(err, &invalidErr):
			app.errorResponse(w, r, http.StatusUnprocessableEntity, invalidErr.Reason)
		case domain.IsTransient(err):
			app.transientErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if app.bookingsCreated != nil {
		app.bookingsCreated.Add(r.Context(), 1)
	}

	logger.Info("booking created",
		"booking_code", result.Booking.Code,
		"screening_id", result.Booking.ScreeningID,
		"seats", len(result.Booking.Seats),
	)

	if input.Email != "" {
		app.sendConfirmationEmail(r, input.Email, result)
	}

	resp := api.CreateBookingResponse{
		BookingCode: result.Booking.Code,
		QrCodeUrl:   fmt.Sprintf("/bookings/%s/qr", result.Booking.Code),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) sendConfirmationEmail(r *http.Request, recipient string, result *booking.Result) {
	logger := app.contextGetLogger(r)

	app.background(logger, func() {
		data := map[string]any{
			"BookingCode": result.QR.BookingCode,
			"Movie":       result.QR.Movie,
			"Hall":        result.QR.Hall,
			"Date":        result.QR.Date,
			"StartTime":   result.QR.StartTime,
			"Seats":       result.QR.Seats,
			"TotalPrice":  result.QR.TotalPrice,
		}

		err := app.mailer.Send(recipient, "booking_confirmation.tmpl", data)
		if err != nil {
			logger.Error("failed to send booking confirmation email", "error", err)
		} else {
			logger.Info("booking confirmation email sent", "booking_code", result.Booking.Code)
		}
	})
}

func (app *Application) GetBooking(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "bookingCode")

	detail, err := app.bookingRepo.GetByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	seats := make([]api.Seat, 0, len(detail.Seats))
	for _, seat := range detail.Seats {
		seats = append(seats, api.Seat{Row: seat.Row, Seat: seat.Seat, Type: string(seat.Kind)})
	}

	resp := api.BookingDetailResponse{
		BookingCode: detail.Code,
		ScreeningId: detail.ScreeningID,
		Movie:       detail.MovieTitle,
		Hall:        detail.HallName,
		Date:        detail.Date.Format("2006-01-02"),
		StartTime:   formatStartTime(detail.StartTime),
		Seats:       seats,
		TotalPrice:  detail.TotalPrice,
		CreatedAt:   detail.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CancelBooking removes the booking and releases its seats back to the
// screening.
func (app *Application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "bookingCode")

	err := app.bookingRepo.DeleteByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case domain.IsTransient(err):
			app.transientErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.MessageResponse{Message: "booking cancelled"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
