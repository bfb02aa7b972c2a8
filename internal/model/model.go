// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Role distinguishes the two principal namespaces. A username may exist
// in both without conflict.
type Role string

const (
	RolePatient   Role = "patient"
	RoleCaregiver Role = "caregiver"
)

// Account represents a registered patient or caregiver credential record.
// Immutable after registration.
type Account struct {
	ID        uuid.UUID // PK
	Role      Role
	Username  string // unique within its role
	PwdHash   []byte // Argon2id(password, Salt)
	Salt      []byte // per-account auth salt
	CreatedAt time.Time
}

// Vaccine is a named product with a finite dose inventory. Doses never
// goes negative; decrements are guarded in storage.
type Vaccine struct {
	Name  string // PK
	Doses int64
}

// Availability is one open (caregiver, day) slot. Publishing the same
// slot twice is a no-op.
type Availability struct {
	Caregiver string
	Day       time.Time // date only, midnight UTC
}

// Reservation links a patient, a caregiver, a vaccine and a day.
// IDs are storage-assigned and monotonically increasing.
type Reservation struct {
	ID        int64
	Patient   string
	Caregiver string
	Vaccine   string
	Day       time.Time
}
