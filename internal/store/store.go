package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"appointment-booking-api/internal/model"
)

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UserByUsername(ctx context.Context, username string) (*model.User, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
}

// AppointmentStore persists appointments. Listing is always scoped to an
// owner and ordered by date ascending.
type AppointmentStore interface {
	CreateAppointment(ctx context.Context, a *model.Appointment) error
	ListAppointmentsByOwner(ctx context.Context, ownerID string) ([]model.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}

// Store is the PostgreSQL implementation of both stores.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
