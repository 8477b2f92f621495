// Package user models the people who request, dispatch and perform
// maintenance work, with a flat role per user.
package user

import (
	"fmt"
	"strings"
	"time"

	"mantis/internal/shared/authorization"
)

type User struct {
	id           uint
	username     string
	email        string
	fullName     string
	passwordHash string
	role         authorization.UserRole
	isActive     bool
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, email, fullName, passwordHash string, role authorization.UserRole, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 150 {
		return nil, fmt.Errorf("username exceeds maximum length of 150 characters")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		username:     username,
		email:        email,
		fullName:     fullName,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username, email, fullName, passwordHash string,
	role authorization.UserRole,
	isActive bool,
	version int,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		fullName:     fullName,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                      { return u.id }
func (u *User) Username() string              { return u.username }
func (u *User) Email() string                 { return u.email }
func (u *User) FullName() string              { return u.fullName }
func (u *User) PasswordHash() string          { return u.passwordHash }
func (u *User) Role() authorization.UserRole  { return u.role }
func (u *User) IsActive() bool                { return u.isActive }
func (u *User) Version() int                  { return u.version }
func (u *User) CreatedAt() time.Time          { return u.createdAt }
func (u *User) UpdatedAt() time.Time          { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// CanPerformActions reports whether the user may be an actor in a
// transition: deactivated users keep their history but lose agency.
func (u *User) CanPerformActions() bool {
	return u.isActive
}

func (u *User) ChangeRole(role authorization.UserRole, now time.Time) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	if u.role == role {
		return nil
	}
	u.role = role
	u.version++
	u.updatedAt = now
	return nil
}

func (u *User) Deactivate(now time.Time) {
	if !u.isActive {
		return
	}
	u.isActive = false
	u.version++
	u.updatedAt = now
}

func (u *User) Activate(now time.Time) {
	if u.isActive {
		return
	}
	u.isActive = true
	u.version++
	u.updatedAt = now
}

func (u *User) DisplayName() string {
	if u.fullName != "" {
		return u.fullName
	}
	return u.username
}
