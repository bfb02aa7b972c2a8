package postgres

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"vaxsched/internal/errs"
	"vaxsched/internal/model"
)

func TestCredentialRepo_Create_OK_and_UniqueViolation(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCredentialRepo(db)
	ctx := context.Background()
	a := &model.Account{
		ID:       uuid.Must(uuid.NewV4()),
		Role:     model.RolePatient,
		Username: "dan",
		PwdHash:  []byte("h"),
		Salt:     []byte("s"),
	}

	// OK
	mock.ExpectExec(`INSERT INTO patients \(id, username, pwd_hash, salt\) VALUES \(\$1, \$2, \$3, \$4\)`).
		WithArgs(a.ID, a.Username, a.PwdHash, a.Salt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, a))

	// Unique violation
	mock.ExpectExec(`INSERT INTO patients \(id, username, pwd_hash, salt\) VALUES \(\$1, \$2, \$3, \$4\)`).
		WithArgs(a.ID, a.Username, a.PwdHash, a.Salt).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	err := r.Create(ctx, a)
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestCredentialRepo_Create_CaregiverTable(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCredentialRepo(db)
	a := &model.Account{
		ID:       uuid.Must(uuid.NewV4()),
		Role:     model.RoleCaregiver,
		Username: "carol",
		PwdHash:  []byte("h"),
		Salt:     []byte("s"),
	}

	mock.ExpectExec(`INSERT INTO caregivers \(id, username, pwd_hash, salt\) VALUES \(\$1, \$2, \$3, \$4\)`).
		WithArgs(a.ID, a.Username, a.PwdHash, a.Salt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(context.Background(), a))
}

func TestCredentialRepo_GetByUsername(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCredentialRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT id, username, pwd_hash, salt, created_at FROM caregivers WHERE username=\$1`).
		WithArgs("carol").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "pwd_hash", "salt", "created_at"}).
			AddRow(id, "carol", []byte("h"), []byte("s"), pgxmock.AnyArg()))
	a, err := r.GetByUsername(ctx, model.RoleCaregiver, "carol")
	require.NoError(t, err)
	require.Equal(t, "carol", a.Username)
	require.Equal(t, model.RoleCaregiver, a.Role)

	mock.ExpectQuery(`SELECT id, username, pwd_hash, salt, created_at FROM patients WHERE username=\$1`).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByUsername(ctx, model.RolePatient, "ghost")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCredentialRepo_UnknownRole(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCredentialRepo(db)

	_, err := r.GetByUsername(context.Background(), model.Role("admin"), "x")
	require.Error(t, err)
}
