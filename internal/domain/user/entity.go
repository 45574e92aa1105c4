package user

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	if !emailPattern.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	isActive     bool
	lastLogin    *time.Time
}

func NewUser(email Email, passwordHash string, role Role) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}, nil
}

func ReconstructUser(id uuid.UUID, email Email, passwordHash string, role Role, isActive bool, lastLogin *time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		lastLogin:    lastLogin,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) LastLogin() *time.Time { return u.lastLogin }

func (u *User) Actor() Actor {
	return Actor{ID: u.id, Role: u.role}
}
