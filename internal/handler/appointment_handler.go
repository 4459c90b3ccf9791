package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"appointment-booking-api/internal/middleware"
	"appointment-booking-api/internal/service"
	"appointment-booking-api/internal/store"
)

type createAppointmentRequest struct {
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

func (h *Handler) listAppointments(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())
	caller := middleware.UserFrom(r.Context())

	list, err := h.appointments.List(r.Context(), caller.ID)
	if err != nil {
		log.Error().Err(err).Msg("listing appointments failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) createAppointment(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())
	caller := middleware.UserFrom(r.Context())

	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	a, err := h.appointments.Create(r.Context(), caller.ID, req.Title, req.Date, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Msg("creating appointment failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) deleteAppointment(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())
	caller := middleware.UserFrom(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.appointments.Delete(r.Context(), caller.ID, id); err != nil {
		switch {
		case errors.Is(err, store.ErrAppointmentNotFound):
			writeError(w, http.StatusNotFound, "appointment not found")
		case errors.Is(err, service.ErrForbidden):
			writeError(w, http.StatusForbidden, "not authorized to delete this appointment")
		default:
			log.Error().Err(err).Msg("deleting appointment failed")
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "appointment removed"})
}
