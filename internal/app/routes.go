package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("cinema-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)

	r.Get("/health", app.GetHealth)

	r.Route("/halls", func(r chi.Router) {
		r.Get("/", app.ListHalls)
		r.Post("/", app.CreateHall)
		r.Get("/{hallId}", app.GetHall)
		r.Patch("/{hallId}", app.UpdateHall)
		r.Delete("/{hallId}", app.DeleteHall)
	})

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.ListMovies)
		r.Post("/", app.CreateMovie)
		r.Get("/{movieId}", app.GetMovie)
		r.Delete("/{movieId}", app.DeleteMovie)
	})

	r.Route("/screenings", func(r chi.Router) {
		r.Get("/", app.ListScreenings)
		r.Post("/", app.CreateScreening)
		r.Get("/{screeningId}", app.GetScreening)
		r.Delete("/{screeningId}", app.DeleteScreening)
		r.Get("/{screeningId}/seats", app.GetSeatMap)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", app.CreateBooking)
		r.Get("/{bookingCode}", app.GetBooking)
		r.Delete("/{bookingCode}", app.CancelBooking)
		r.Get("/{bookingCode}/qr", app.GetBookingQR)
	})

	r.Route("/sales", func(r chi.Router) {
		r.Get("/", app.GetSalesStatus)
		r.Put("/", app.SetSalesStatus)
	})

	return r
}
