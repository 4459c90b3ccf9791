package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appointment-booking-api/internal/store"
)

func TestCreateAppointment(t *testing.T) {
	s := NewAppointmentService(newMemStore())
	date := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

	a, err := s.Create(context.Background(), "owner-1", "Dentist", date, "checkup")
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "owner-1", a.UserID)
	assert.Equal(t, "Dentist", a.Title)
	assert.True(t, a.Date.Equal(date))
	assert.Equal(t, "checkup", a.Description)
}

func TestCreateAppointmentValidation(t *testing.T) {
	st := newMemStore()
	s := NewAppointmentService(st)
	date := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		title string
		date  time.Time
	}{
		{"empty title", "", date},
		{"whitespace title", "   ", date},
		{"zero date", "Dentist", time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), "owner-1", tt.title, tt.date, "")
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// nothing was persisted for the rejected inputs
	list, err := s.List(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateTrimsTitle(t *testing.T) {
	s := NewAppointmentService(newMemStore())

	a, err := s.Create(context.Background(), "owner-1", "  Dentist  ", time.Now(), "")
	require.NoError(t, err)
	assert.Equal(t, "Dentist", a.Title)
}

func TestListSortedAndScoped(t *testing.T) {
	s := NewAppointmentService(newMemStore())
	ctx := context.Background()
	base := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

	_, err := s.Create(ctx, "owner-1", "Second", base.Add(48*time.Hour), "")
	require.NoError(t, err)
	_, err = s.Create(ctx, "owner-1", "First", base, "")
	require.NoError(t, err)
	_, err = s.Create(ctx, "owner-2", "Other", base.Add(time.Hour), "")
	require.NoError(t, err)

	list, err := s.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Title)
	assert.Equal(t, "Second", list[1].Title)
	for _, a := range list {
		assert.Equal(t, "owner-1", a.UserID)
	}
}

func TestDeleteNotFound(t *testing.T) {
	s := NewAppointmentService(newMemStore())

	err := s.Delete(context.Background(), "owner-1", "missing-id")
	assert.ErrorIs(t, err, store.ErrAppointmentNotFound)
}

func TestDeleteForbiddenLeavesRecord(t *testing.T) {
	s := NewAppointmentService(newMemStore())
	ctx := context.Background()

	a, err := s.Create(ctx, "owner-1", "Dentist", time.Now(), "")
	require.NoError(t, err)

	err = s.Delete(ctx, "owner-2", a.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// still there for the real owner
	list, err := s.List(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteByOwner(t *testing.T) {
	st := newMemStore()
	s := NewAppointmentService(st)
	ctx := context.Background()

	a, err := s.Create(ctx, "owner-1", "Dentist", time.Now(), "")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "owner-1", a.ID))

	_, err = st.GetAppointment(ctx, a.ID)
	assert.ErrorIs(t, err, store.ErrAppointmentNotFound)
}
