package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kinosvet/cinema-booking/internal/domain"
	"github.com/yeqown/go-qrcode"
)

// GetBookingQR renders the ticket QR code image. The encoded payload is the
// booking's JSON ticket document, regenerated on every request with a fresh
// timestamp.
func (app *Application) GetBookingQR(w http.ResponseWriter, r *http.Request) {
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

	payload, err := json.Marshal(detail.QRPayload(time.Now()))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	qrc, err := qrcode.New(string(payload))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "max-age=3600")

	err = qrc.SaveTo(w)
	if err != nil {
		app.logError(r, err)
	}
}
