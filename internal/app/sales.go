package app

import (
	"net/http"

	"github.com/kinosvet/cinema-booking/api"
)

func (app *Application) GetSalesStatus(w http.ResponseWriter, r *http.Request) {
	open, err := app.salesGate.IsOpen(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.SalesResponse{Open: open}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) SetSalesStatus(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.SetSalesRequest

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

	err = app.salesGate.SetOpen(r.Context(), *input.Open)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("sales gate updated", "open", *input.Open)

	err = app.writeJSON(w, http.StatusOK, api.SalesResponse{Open: *input.Open}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
