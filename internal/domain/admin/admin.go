// Package admin holds the administrator identity used to authenticate the
// dashboard. Admins are created out-of-band by the seed command.
package admin

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

// PasswordHasher abstracts password hashing so the domain never depends on a
// concrete algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type Admin struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         authorization.AdminRole
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAdmin(name, email, password string, role authorization.AdminRole, hasher PasswordHasher) (*Admin, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := biztime.NowUTC()
	return &Admin{
		name:         name,
		email:        email,
		passwordHash: hash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAdmin(
	id uint,
	name, email, passwordHash string,
	role authorization.AdminRole,
	createdAt, updatedAt time.Time,
) (*Admin, error) {
	if id == 0 {
		return nil, fmt.Errorf("admin ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &Admin{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Admin) ID() uint {
	return a.id
}

func (a *Admin) Name() string {
	return a.name
}

func (a *Admin) Email() string {
	return a.email
}

func (a *Admin) PasswordHash() string {
	return a.passwordHash
}

func (a *Admin) Role() authorization.AdminRole {
	return a.role
}

func (a *Admin) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Admin) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Admin) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("admin ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("admin ID cannot be zero")
	}
	a.id = id
	return nil
}

// VerifyPassword checks a candidate password against the stored hash.
func (a *Admin) VerifyPassword(password string, hasher PasswordHasher) error {
	return hasher.Verify(password, a.passwordHash)
}
