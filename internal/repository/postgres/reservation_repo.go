package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"vaxsched/internal/errs"
	"vaxsched/internal/model"
)

// ReservationRepo implements ReservationRepository using PostgreSQL.
type ReservationRepo struct{ db *DB }

// NewReservationRepo constructs a reservation repository.
func NewReservationRepo(db *DB) *ReservationRepo { return &ReservationRepo{db: db} }

// FindByID selects a reservation by id.
func (r *ReservationRepo) FindByID(ctx context.Context, id int64) (*model.Reservation, error) {
	const q = `
SELECT id, patient, caregiver, vaccine, day
FROM reservations WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var res model.Reservation
	if err := row.Scan(&res.ID, &res.Patient, &res.Caregiver, &res.Vaccine, &res.Day); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

// ListByPrincipal returns reservations for the role's column, ascending by id.
func (r *ReservationRepo) ListByPrincipal(ctx context.Context, role model.Role, username string) ([]model.Reservation, error) {
	const byPatient = `
SELECT id, patient, caregiver, vaccine, day
FROM reservations WHERE patient=$1 ORDER BY id ASC`
	const byCaregiver = `
SELECT id, patient, caregiver, vaccine, day
FROM reservations WHERE caregiver=$1 ORDER BY id ASC`

	q := byPatient
	if role == model.RoleCaregiver {
		q = byCaregiver
	}
	rows, err := r.db.Pool.Query(ctx, q, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Reservation
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(&res.ID, &res.Patient, &res.Caregiver, &res.Vaccine, &res.Day); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
