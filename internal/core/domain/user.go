package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

var ErrUsernameTaken = errors.New("username is already taken")
var ErrEmailTaken = errors.New("email is already in use")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")

// User models a registered account. Role is fixed at creation time:
// registration always produces RoleUser, admins come from seeding.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the request-scoped projection of an authenticated user,
// attached to the request context by the identity middleware. It is never
// persisted and never outlives the request.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the identity may perform admin-only operations.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
