package app

import (
	"errors"
	"net/http"

	"github.com/kinosvet/cinema-booking/api"
	"github.com/kinosvet/cinema-booking/internal/domain"
)

// GetSeatMap merges the hall layout with the screening's booked-seat set
// into a per-row availability view. Availability is derived on every read,
// never stored.
func (app *Application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "screeningId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	details, err := app.screeningRepo.GetWithHall(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toSeatMapResponse(details)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMapResponse(details *domain.ScreeningDetails) api.SeatMapResponse {
	booked := details.BookedSet()

	seatRows := make([]api.SeatRow, 0, details.Hall.Rows)

	for row := 1; row <= details.Hall.Rows; row++ {
		currentRow := api.SeatRow{Row: row}

		for seat := 1; seat <= details.Hall.SeatsPerRow; seat++ {
			descriptor, ok := details.Hall.SeatAt(row, seat)
			if !ok {
				continue
			}

			available := descriptor.Kind != domain.SeatDisabled && !booked[domain.SeatKey(row, seat)]

			currentRow.Seats = append(currentRow.Seats, api.SeatMapSeat{
				Row:       row,
				Seat:      seat,
				Type:      string(descriptor.Kind),
				Available: available,
			})
		}

		seatRows = append(seatRows, currentRow)
	}

	return api.SeatMapResponse{
		ScreeningId:   details.ID,
		HallId:        details.Hall.ID,
		HallName:      details.Hall.Name,
		StandardPrice: details.Hall.StandardPrice,
		VipPrice:      details.Hall.VipPrice,
		SeatRows:      seatRows,
	}
}
