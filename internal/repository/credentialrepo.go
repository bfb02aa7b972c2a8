// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"vaxsched/internal/model"
)

// CredentialRepository persists patient and caregiver credential records.
// The two roles are separate namespaces.
type CredentialRepository interface {
	// Create inserts a new account; ErrAlreadyExists if the username is taken for the role.
	Create(ctx context.Context, a *model.Account) error
	// GetByUsername loads an account by role and username; ErrNotFound if absent.
	GetByUsername(ctx context.Context, role model.Role, username string) (*model.Account, error)
}
