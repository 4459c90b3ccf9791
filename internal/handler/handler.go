package handler

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"appointment-booking-api/internal/auth"
	"appointment-booking-api/internal/middleware"
	"appointment-booking-api/internal/service"
	"appointment-booking-api/internal/store"
)

type Handler struct {
	accounts     *service.AuthService
	appointments *service.AppointmentService
	issuer       *auth.Issuer
	users        store.UserStore
	limiter      *middleware.RateLimiter
	log          zerolog.Logger
}

func New(accounts *service.AuthService, appointments *service.AppointmentService, issuer *auth.Issuer, users store.UserStore, limiter *middleware.RateLimiter, log zerolog.Logger) *Handler {
	return &Handler{
		accounts:     accounts,
		appointments: appointments,
		issuer:       issuer,
		users:        users,
		limiter:      limiter,
		log:          log,
	}
}

func (h *Handler) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(h.log))

	r.Get("/healthz", h.health)

	// open routes, rate limited per client IP
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(h.limiter))
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
	})

	// protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(h.issuer, h.users))
		r.Get("/api/appointments", h.listAppointments)
		r.Post("/api/appointments", h.createAppointment)
		r.Delete("/api/appointments/{id}", h.deleteAppointment)
	})

	return r
}
