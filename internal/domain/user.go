package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Role is the closed set of account roles. Authorization checks switch
// exhaustively on this type so a new role forces a review of every check site.
type Role string

const (
	RoleYouth        Role = "youth"
	RoleOrganization Role = "organization"
	RoleAdmin        Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleYouth, RoleOrganization, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}

// AuthResult pairs a user with a freshly signed token for register/login responses.
type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type AuthUsecase interface {
	Register(ctx context.Context, name, email, password string, role Role) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
	UpdateMe(ctx context.Context, email, password string) (*User, error)
	DeleteUser(ctx context.Context, targetUserID string) error
}
