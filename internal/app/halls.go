package app

import (
	"errors"
	"net/http"

	"github.com/kinosvet/cinema-booking/api"
	"github.com/kinosvet/cinema-booking/internal/domain"
)

func (app *Application) ListHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := app.hallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.HallListResponse{Halls: make([]api.Hall, 0, len(halls))}
	for i := range halls {
		resp.Halls = append(resp.Halls, toHallResponse(&halls[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetHall(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "hallId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	hall, err := app.hallRepo.GetById(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toHallResponse(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateHall(w http.ResponseWriter, r *http.Request) {
	var input api.CreateHallRequest

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

	layout := toDomainLayout(input.Layout)
	if len(layout) == 0 {
		layout = domain.GenerateLayout(input.Rows, input.SeatsPerRow)
	} else {
		err = domain.ValidateLayout(layout, input.Rows, input.SeatsPerRow)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
	}

	hall := domain.Hall{
		Name:          input.Name,
		Rows:          input.Rows,
		SeatsPerRow:   input.SeatsPerRow,
		StandardPrice: input.StandardPrice,
		VipPrice:      input.VipPrice,
		Layout:        layout,
	}

	err = app.hallRepo.Create(r.Context(), &hall)
	if err != nil {
		// A taken name is a request the client must correct, like any other
		// validation failure.
		if errors.Is(err, domain.ErrDuplicateHallName) {
			app.errorResponse(w, r, http.StatusUnprocessableEntity, "A hall with this name already exists")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toHallResponse(&hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateHall(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "hallId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateHallRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	hall, err := app.hallRepo.GetById(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	if input.Name != nil {
		hall.Name = *input.Name
	}
	if input.StandardPrice != nil {
		hall.StandardPrice = *input.StandardPrice
	}
	if input.VipPrice != nil {
		hall.VipPrice = *input.VipPrice
	}

	rows, seatsPerRow := hall.Rows, hall.SeatsPerRow
	if input.Rows != nil {
		rows = *input.Rows
	}
	if input.SeatsPerRow != nil {
		seatsPerRow = *input.SeatsPerRow
	}

	switch {
	case input.Layout != nil:
		layout := toDomainLayout(input.Layout)

		err = domain.ValidateLayout(layout, rows, seatsPerRow)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}

		hall.Rows = rows
		hall.SeatsPerRow = seatsPerRow
		hall.Layout = layout

	case rows != hall.Rows || seatsPerRow != hall.SeatsPerRow:
		hall.Resize(rows, seatsPerRow)
	}

	err = app.hallRepo.Update(r.Context(), hall)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		case errors.Is(err, domain.ErrDuplicateHallName):
			app.errorResponse(w, r, http.StatusUnprocessableEntity, "A hall with this name already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toHallResponse(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteHall(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "hallId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.hallRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrHallInUse):
			app.errorResponse(w, r, http.StatusConflict, "The hall has scheduled screenings and cannot be deleted")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.MessageResponse{Message: "hall deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toHallResponse(hall *domain.Hall) api.Hall {
	layout := make([]api.Seat, 0, len(hall.Layout))
	for _, sd := range hall.Layout {
		layout = append(layout, api.Seat{Row: sd.Row, Seat: sd.Seat, Type: string(sd.Kind)})
	}

	return api.Hall{
		Id:            hall.ID,
		Name:          hall.Name,
		Rows:          hall.Rows,
		SeatsPerRow:   hall.SeatsPerRow,
		StandardPrice: hall.StandardPrice,
		VipPrice:      hall.VipPrice,
		Layout:        layout,
	}
}

func toDomainLayout(seats []api.Seat) []domain.SeatDescriptor {
	layout := make([]domain.SeatDescriptor, 0, len(seats))
	for _, s := range seats {
		layout = append(layout, domain.SeatDescriptor{
			Row:  s.Row,
			Seat: s.Seat,
			Kind: domain.SeatKind(s.Type),
		})
	}

	return layout
}
