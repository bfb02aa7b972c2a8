package repository

import (
	"context"

	"vaxsched/internal/model"
)

// VaccineRepository tracks named vaccine products and their dose inventory.
type VaccineRepository interface {
	// Get loads a vaccine by name; ErrNotFound if absent.
	Get(ctx context.Context, name string) (*model.Vaccine, error)
	// AddDoses creates the vaccine with delta doses or atomically increases
	// an existing inventory. delta must be positive.
	AddDoses(ctx context.Context, name string, delta int64) error
	// List returns all vaccines ordered by name.
	List(ctx context.Context) ([]model.Vaccine, error)
}
