package postgres

import (
	"context"
	"time"
)

// AvailabilityRepo implements AvailabilityRepository using PostgreSQL.
type AvailabilityRepo struct{ db *DB }

// NewAvailabilityRepo constructs an availability repository.
func NewAvailabilityRepo(db *DB) *AvailabilityRepo { return &AvailabilityRepo{db: db} }

// Publish opens a slot; the composite PK makes re-publishing a no-op.
func (r *AvailabilityRepo) Publish(ctx context.Context, caregiver string, day time.Time) error {
	const q = `
INSERT INTO availabilities (username, day) VALUES ($1, $2)
ON CONFLICT (username, day) DO NOTHING`
	_, err := r.db.Pool.Exec(ctx, q, caregiver, day)
	return err
}

// ListByDay returns caregivers with an open slot on day, ascending by username.
func (r *AvailabilityRepo) ListByDay(ctx context.Context, day time.Time) ([]string, error) {
	const q = `SELECT username FROM availabilities WHERE day=$1 ORDER BY username ASC`
	rows, err := r.db.Pool.Query(ctx, q, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
