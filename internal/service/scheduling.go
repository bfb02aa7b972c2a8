package service

import (
	"context"
	"errors"
	"time"

	"vaxsched/internal/model"
	"vaxsched/internal/repository"
)

// DayLayout is the wire format for calendar dates on the command surface.
const DayLayout = "01-02-2006"

// ParseDay parses an mm-dd-yyyy token into a calendar date.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// Schedule is the result of a schedule search: caregivers free on the day
// and the full vaccine inventory. The two listings are independent; vaccines
// are reported even when no caregiver is free.
type Schedule struct {
	Caregivers []string
	Vaccines   []model.Vaccine
}

// SchedulingService defines the scheduling operations available to sessions.
type SchedulingService interface {
	// Search returns caregivers available on day plus all vaccine dose counts.
	Search(ctx context.Context, day time.Time) (*Schedule, error)
	// Reserve books the lexicographically-first free caregiver on day for patient.
	// Errors: ErrNoCaregiverAvailable, ErrInsufficientDoses, ErrConflict.
	Reserve(ctx context.Context, patient string, day time.Time, vaccine string) (*model.Reservation, error)
	// Cancel removes a reservation owned by the principal and compensates
	// the slot and dose. Errors: ErrNotFound, ErrUnauthorized.
	Cancel(ctx context.Context, id int64, role model.Role, username string) error
	// PublishAvailability opens a (caregiver, day) slot; idempotent.
	PublishAvailability(ctx context.Context, caregiver string, day time.Time) error
	// AddDoses creates or tops up a vaccine inventory. count must be positive.
	AddDoses(ctx context.Context, vaccine string, count int64) error
	// Appointments lists the principal's reservations ascending by id.
	Appointments(ctx context.Context, role model.Role, username string) ([]model.Reservation, error)
}

type SchedulingServiceImpl struct {
	availability repository.AvailabilityRepository
	vaccines     repository.VaccineRepository
	reservations repository.ReservationRepository
	schedule     repository.ScheduleRepository
}

// NewSchedulingService constructs SchedulingService with required repositories.
func NewSchedulingService(
	availability repository.AvailabilityRepository,
	vaccines repository.VaccineRepository,
	reservations repository.ReservationRepository,
	schedule repository.ScheduleRepository,
) *SchedulingServiceImpl {
	return &SchedulingServiceImpl{
		availability: availability,
		vaccines:     vaccines,
		reservations: reservations,
		schedule:     schedule,
	}
}

// Search lists free caregivers for the day and every vaccine's dose count.
func (s *SchedulingServiceImpl) Search(ctx context.Context, day time.Time) (*Schedule, error) {
	caregivers, err := s.availability.ListByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	vaccines, err := s.vaccines.List(ctx)
	if err != nil {
		return nil, err
	}
	return &Schedule{Caregivers: caregivers, Vaccines: vaccines}, nil
}

// Reserve delegates the atomic claim/decrement/insert to the schedule repository.
func (s *SchedulingServiceImpl) Reserve(ctx context.Context, patient string, day time.Time, vaccine string) (*model.Reservation, error) {
	if patient == "" || vaccine == "" {
		return nil, errors.New("validation: empty patient/vaccine")
	}
	return s.schedule.Reserve(ctx, patient, day, vaccine)
}

// Cancel delegates the atomic delete/release/increment to the schedule repository.
func (s *SchedulingServiceImpl) Cancel(ctx context.Context, id int64, role model.Role, username string) error {
	if id <= 0 {
		return errors.New("validation: non-positive reservation id")
	}
	return s.schedule.Cancel(ctx, id, role, username)
}

// PublishAvailability opens a slot for the caregiver.
func (s *SchedulingServiceImpl) PublishAvailability(ctx context.Context, caregiver string, day time.Time) error {
	if caregiver == "" {
		return errors.New("validation: empty caregiver")
	}
	return s.availability.Publish(ctx, caregiver, day)
}

// AddDoses creates the vaccine on first add or increases the inventory.
func (s *SchedulingServiceImpl) AddDoses(ctx context.Context, vaccine string, count int64) error {
	if vaccine == "" {
		return errors.New("validation: empty vaccine name")
	}
	return s.vaccines.AddDoses(ctx, vaccine, count)
}

// Appointments lists reservations for the principal ordered by id.
func (s *SchedulingServiceImpl) Appointments(ctx context.Context, role model.Role, username string) ([]model.Reservation, error) {
	return s.reservations.ListByPrincipal(ctx, role, username)
}
