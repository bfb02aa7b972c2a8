package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"vaxsched/internal/errs"
	"vaxsched/internal/model"
)

// CredentialRepo implements CredentialRepository using PostgreSQL.
// Patients and caregivers live in separate tables so the two username
// namespaces cannot collide.
type CredentialRepo struct{ db *DB }

// NewCredentialRepo constructs a credential repository.
func NewCredentialRepo(db *DB) *CredentialRepo { return &CredentialRepo{db: db} }

func tableFor(role model.Role) (string, error) {
	switch role {
	case model.RolePatient:
		return "patients", nil
	case model.RoleCaregiver:
		return "caregivers", nil
	default:
		return "", fmt.Errorf("unknown role %q", role)
	}
}

// Create inserts a new account row for its role.
func (r *CredentialRepo) Create(ctx context.Context, a *model.Account) error {
	table, err := tableFor(a.Role)
	if err != nil {
		return err
	}
	q := fmt.Sprintf(`
INSERT INTO %s (id, username, pwd_hash, salt)
VALUES ($1, $2, $3, $4)`, table)
	_, err = r.db.Pool.Exec(ctx, q, a.ID, a.Username, a.PwdHash, a.Salt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// GetByUsername selects an account by role and username.
func (r *CredentialRepo) GetByUsername(ctx context.Context, role model.Role, username string) (*model.Account, error) {
	table, err := tableFor(role)
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf(`
SELECT id, username, pwd_hash, salt, created_at
FROM %s WHERE username=$1`, table)
	row := r.db.Pool.QueryRow(ctx, q, username)
	a := model.Account{Role: role}
	if err := row.Scan(&a.ID, &a.Username, &a.PwdHash, &a.Salt, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
