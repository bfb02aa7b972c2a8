// Package service contains application services for authentication and scheduling.
package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "vaxsched/internal/crypto"
	"vaxsched/internal/errs"
	"vaxsched/internal/model"
	"vaxsched/internal/repository"
)

// AuthService defines registration and authentication for both principal kinds.
type AuthService interface {
	// Register creates a new account with secure password hashing.
	// Errors: ErrAlreadyExists, ErrWeakPassword.
	Register(ctx context.Context, role model.Role, username, password string) error
	// Authenticate verifies credentials and returns the account on match.
	// Unknown username and wrong password are both ErrUnauthorized.
	Authenticate(ctx context.Context, role model.Role, username, password string) (*model.Account, error)
}

type AuthServiceImpl struct {
	creds repository.CredentialRepository
}

// NewAuthService constructs AuthService.
func NewAuthService(creds repository.CredentialRepository) *AuthServiceImpl {
	return &AuthServiceImpl{creds: creds}
}

// Register creates a new account record with a per-account salt.
func (s *AuthServiceImpl) Register(ctx context.Context, role model.Role, username, password string) error {
	if username == "" || password == "" {
		return errors.New("empty username/password")
	}
	if pkgcrypto.CheckStrength(password) != pkgcrypto.StrengthOK {
		return errs.ErrWeakPassword
	}
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	salt, err := pkgcrypto.RandBytes(pkgcrypto.SaltLen)
	if err != nil {
		return err
	}

	a := &model.Account{
		ID:       id,
		Role:     role,
		Username: username,
		PwdHash:  pkgcrypto.HashPassword([]byte(password), salt),
		Salt:     salt,
	}
	return s.creds.Create(ctx, a)
}

// Authenticate recomputes the salted hash and compares in constant time.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, role model.Role, username, password string) (*model.Account, error) {
	a, err := s.creds.GetByUsername(ctx, role, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// hide existence of the account on unknown username
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}
	if !pkgcrypto.VerifyPassword([]byte(password), a.Salt, a.PwdHash) {
		return nil, errs.ErrUnauthorized
	}
	return a, nil
}
