package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"vaxsched/internal/errs"
	"vaxsched/internal/model"
)

func TestReservationRepo_FindByID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewReservationRepo(db)
	ctx := context.Background()
	d := day(t, "03-05-2024")

	mock.ExpectQuery(`SELECT id, patient, caregiver, vaccine, day FROM reservations WHERE id=\$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "patient", "caregiver", "vaccine", "day"}).
			AddRow(int64(1), "dan", "carol", "Pfizer", d))
	res, err := r.FindByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "carol", res.Caregiver)

	mock.ExpectQuery(`SELECT id, patient, caregiver, vaccine, day FROM reservations WHERE id=\$1`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.FindByID(ctx, 99)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestReservationRepo_ListByPrincipal(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewReservationRepo(db)
	ctx := context.Background()
	d := day(t, "03-05-2024")

	mock.ExpectQuery(`SELECT id, patient, caregiver, vaccine, day FROM reservations WHERE patient=\$1 ORDER BY id ASC`).
		WithArgs("dan").
		WillReturnRows(pgxmock.NewRows([]string{"id", "patient", "caregiver", "vaccine", "day"}).
			AddRow(int64(1), "dan", "carol", "Pfizer", d).
			AddRow(int64(3), "dan", "alice", "Moderna", d))
	out, err := r.ListByPrincipal(ctx, model.RolePatient, "dan")
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, int64(1), out[0].ID)
	require.Equal(t, int64(3), out[1].ID)

	mock.ExpectQuery(`SELECT id, patient, caregiver, vaccine, day FROM reservations WHERE caregiver=\$1 ORDER BY id ASC`).
		WithArgs("carol").
		WillReturnRows(pgxmock.NewRows([]string{"id", "patient", "caregiver", "vaccine", "day"}))
	out, err = r.ListByPrincipal(ctx, model.RoleCaregiver, "carol")
	require.NoError(t, err)
	require.Empty(t, out)
}
