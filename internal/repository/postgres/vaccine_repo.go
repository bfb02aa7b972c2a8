package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"vaxsched/internal/errs"
	"vaxsched/internal/model"
)

// VaccineRepo implements VaccineRepository using PostgreSQL.
type VaccineRepo struct{ db *DB }

// NewVaccineRepo constructs a vaccine repository.
func NewVaccineRepo(db *DB) *VaccineRepo { return &VaccineRepo{db: db} }

// Get selects a vaccine by name.
func (r *VaccineRepo) Get(ctx context.Context, name string) (*model.Vaccine, error) {
	const q = `SELECT name, doses FROM vaccines WHERE name=$1`
	row := r.db.Pool.QueryRow(ctx, q, name)
	var v model.Vaccine
	if err := row.Scan(&v.Name, &v.Doses); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// AddDoses creates the vaccine on first add, otherwise atomically increases
// the existing inventory.
func (r *VaccineRepo) AddDoses(ctx context.Context, name string, delta int64) error {
	if delta <= 0 {
		return fmt.Errorf("validation: non-positive dose delta %d", delta)
	}
	const q = `
INSERT INTO vaccines (name, doses) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET doses = vaccines.doses + EXCLUDED.doses`
	_, err := r.db.Pool.Exec(ctx, q, name, delta)
	return err
}

// List returns all vaccines ordered by name.
func (r *VaccineRepo) List(ctx context.Context) ([]model.Vaccine, error) {
	const q = `SELECT name, doses FROM vaccines ORDER BY name ASC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Vaccine
	for rows.Next() {
		var v model.Vaccine
		if err := rows.Scan(&v.Name, &v.Doses); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
