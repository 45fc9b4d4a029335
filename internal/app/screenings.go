package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/kinosvet/cinema-booking/api"
	"github.com/kinosvet/cinema-booking/internal/domain"
)

func (app *Application) ListScreenings(w http.ResponseWriter, r *http.Request) {
	screenings, err := app.screeningRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ScreeningListResponse{Screenings: make([]api.Screening, 0, len(screenings))}
	for i := range screenings {
		resp.Screenings = append(resp.Screenings, toScreeningResponse(&screenings[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetScreening(w http.ResponseWriter, r *http.Request) {
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

	resp := toScreeningResponse(details)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var input api.CreateScreeningRequest

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

	date, startTime, err := parseScreeningTime(input.Date, input.StartTime)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !date.Add(startTime).After(time.Now()) {
		app.errorResponse(w, r, http.StatusUnprocessableEntity, "Screening must be scheduled in the future")
		return
	}

	screening := domain.Screening{
		MovieID:   input.MovieId,
		HallID:    input.HallId,
		Date:      date,
		StartTime: startTime,
	}

	err = app.screeningRepo.Create(r.Context(), &screening)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.errorResponse(w, r, http.StatusUnprocessableEntity, "The referenced movie or hall does not exist")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	details, err := app.screeningRepo.GetWithHall(r.Context(), screening.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toScreeningResponse(details), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteScreening(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "screeningId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.screeningRepo.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.MessageResponse{Message: "screening deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// parseScreeningTime converts the wire date and clock strings into the
// domain representation: a midnight UTC date plus an offset.
func parseScreeningTime(dateStr, startTimeStr string) (time.Time, time.Duration, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, 0, errors.New("invalid date")
	}

	clock, err := time.Parse("15:04", startTimeStr)
	if err != nil {
		return time.Time{}, 0, errors.New("invalid start time")
	}

	startTime := time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute

	return date, startTime, nil
}

func formatStartTime(offset time.Duration) string {
	return time.Time{}.Add(offset).Format("15:04")
}

func toScreeningResponse(details *domain.ScreeningDetails) api.Screening {
	return api.Screening{
		Id:        details.ID,
		Date:      details.Date.Format("2006-01-02"),
		StartTime: formatStartTime(details.StartTime),
		Movie: api.ScreeningMovie{
			Id:       details.MovieID,
			Title:    details.MovieTitle,
			Duration: details.MovieDuration,
		},
		Hall: api.ScreeningHall{
			Id:   details.HallID,
			Name: details.Hall.Name,
		},
	}
}
