package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"appointment-booking-api/internal/model"
	"appointment-booking-api/internal/store"
)

// AppointmentService enforces ownership on top of the appointment store:
// callers only ever see, create for, or delete their own records.
type AppointmentService struct {
	appointments store.AppointmentStore
}

func NewAppointmentService(appointments store.AppointmentStore) *AppointmentService {
	return &AppointmentService{appointments: appointments}
}

func (s *AppointmentService) List(ctx context.Context, callerID string) ([]model.Appointment, error) {
	return s.appointments.ListAppointmentsByOwner(ctx, callerID)
}

func (s *AppointmentService) Create(ctx context.Context, callerID, title string, date time.Time, description string) (*model.Appointment, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}

	// owner comes from the caller's identity, never from the request body
	a := &model.Appointment{
		ID:          uuid.New().String(),
		UserID:      callerID,
		Title:       title,
		Date:        date,
		Description: description,
	}
	if err := s.appointments.CreateAppointment(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes the appointment if the caller owns it. Existence is checked
// before ownership: a wrong id is a 404 for any authenticated caller, an
// existing id owned by someone else is a 403. Ids are server-generated UUIDs,
// so revealing existence carries no independent sensitivity.
func (s *AppointmentService) Delete(ctx context.Context, callerID, id string) error {
	a, err := s.appointments.GetAppointment(ctx, id)
	if err != nil {
		return err
	}
	if a.UserID != callerID {
		return ErrForbidden
	}
	return s.appointments.DeleteAppointment(ctx, id)
}
