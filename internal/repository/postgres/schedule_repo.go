package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"vaxsched/internal/errs"
	"vaxsched/internal/model"
)

// ScheduleRepo implements ScheduleRepository using PostgreSQL. Both
// operations run as a single transaction so a failure at any step leaves
// the availability, vaccine and reservation tables untouched.
type ScheduleRepo struct{ db *DB }

// NewScheduleRepo constructs a schedule repository.
func NewScheduleRepo(db *DB) *ScheduleRepo { return &ScheduleRepo{db: db} }

// Reserve claims the lexicographically-first open slot on day, decrements the
// vaccine inventory and inserts the reservation.
//
// Concurrency: the vaccine row is locked FOR UPDATE; the slot claim is a
// guarded DELETE whose rows-affected count detects a concurrent claim and
// surfaces it as ErrConflict (retryable). The doses > 0 guard on the UPDATE
// re-checks committed state, so the counter cannot go negative.
func (r *ScheduleRepo) Reserve(
	ctx context.Context, patient string, day time.Time, vaccine string,
) (res *model.Reservation, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
			res = nil
		}
	}()

	const selCaregivers = `SELECT username FROM availabilities WHERE day=$1 ORDER BY username ASC`
	const selDoses = `SELECT doses FROM vaccines WHERE name=$1 FOR UPDATE`
	const claimSlot = `DELETE FROM availabilities WHERE username=$1 AND day=$2`
	const decDoses = `UPDATE vaccines SET doses = doses - 1 WHERE name=$1 AND doses > 0`
	const insRes = `
INSERT INTO reservations (patient, caregiver, vaccine, day)
VALUES ($1, $2, $3, $4) RETURNING id`

	rows, err := tx.Query(ctx, selCaregivers, day)
	if err != nil {
		return nil, err
	}
	var candidates []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			rows.Close()
			return nil, err
		}
		candidates = append(candidates, name)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	selected, ok := model.PickCaregiver(candidates)
	if !ok {
		return nil, errs.ErrNoCaregiverAvailable
	}

	var doses int64
	if err = tx.QueryRow(ctx, selDoses, vaccine).Scan(&doses); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrInsufficientDoses
		}
		return nil, err
	}
	if doses <= 0 {
		return nil, errs.ErrInsufficientDoses
	}

	tag, err := tx.Exec(ctx, claimSlot, selected, day)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		// Lost a race on the slot; caller may retry.
		return nil, errs.ErrConflict
	}

	tag, err = tx.Exec(ctx, decDoses, vaccine)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, errs.ErrInsufficientDoses
	}

	res = &model.Reservation{Patient: patient, Caregiver: selected, Vaccine: vaccine, Day: day}
	if err = tx.QueryRow(ctx, insRes, patient, selected, vaccine, day).Scan(&res.ID); err != nil {
		return nil, err
	}
	return res, nil
}

// Cancel deletes the reservation and compensates: the caregiver's slot is
// re-opened and one dose returned to the vaccine inventory. Authorization is
// checked inside the transaction against the FOR UPDATE row, so there is no
// window between the check and the mutation.
func (r *ScheduleRepo) Cancel(ctx context.Context, id int64, role model.Role, username string) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const selRes = `
SELECT patient, caregiver, vaccine, day FROM reservations WHERE id=$1 FOR UPDATE`
	const delRes = `DELETE FROM reservations WHERE id=$1`
	const releaseSlot = `
INSERT INTO availabilities (username, day) VALUES ($1, $2)
ON CONFLICT (username, day) DO NOTHING`
	const incDoses = `UPDATE vaccines SET doses = doses + 1 WHERE name=$1`

	var res model.Reservation
	if err = tx.QueryRow(ctx, selRes, id).Scan(&res.Patient, &res.Caregiver, &res.Vaccine, &res.Day); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}

	owner := res.Patient
	if role == model.RoleCaregiver {
		owner = res.Caregiver
	}
	if owner != username {
		return errs.ErrUnauthorized
	}

	if _, err = tx.Exec(ctx, delRes, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, releaseSlot, res.Caregiver, res.Day); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, incDoses, res.Vaccine); err != nil {
		return err
	}
	return nil
}
