package repository

import (
	"context"
	"time"

	"vaxsched/internal/model"
)

// AvailabilityRepository manages per-caregiver open slots.
type AvailabilityRepository interface {
	// Publish opens a (caregiver, day) slot; publishing an existing slot is a no-op.
	Publish(ctx context.Context, caregiver string, day time.Time) error
	// ListByDay returns caregivers with an open slot on day, ascending by username.
	ListByDay(ctx context.Context, day time.Time) ([]string, error)
}

// ReservationRepository reads the appointment ledger.
type ReservationRepository interface {
	// FindByID loads a reservation; ErrNotFound if absent.
	FindByID(ctx context.Context, id int64) (*model.Reservation, error)
	// ListByPrincipal returns reservations where the role's column equals
	// username, ascending by id.
	ListByPrincipal(ctx context.Context, role model.Role, username string) ([]model.Reservation, error)
}

// ScheduleRepository executes the multi-table scheduling transactions.
// Both operations are all-or-nothing: a failure at any step leaves the
// availability, vaccine and reservation tables untouched.
type ScheduleRepository interface {
	// Reserve claims the lexicographically-first open slot on day, decrements
	// the vaccine inventory and inserts the reservation, atomically.
	// Errors: ErrNoCaregiverAvailable, ErrInsufficientDoses, ErrConflict (retryable).
	Reserve(ctx context.Context, patient string, day time.Time, vaccine string) (*model.Reservation, error)
	// Cancel deletes the reservation and compensates: the slot is re-opened and
	// one dose is returned. The principal must match the reservation column for
	// its role. Errors: ErrNotFound, ErrUnauthorized.
	Cancel(ctx context.Context, id int64, role model.Role, username string) error
}
