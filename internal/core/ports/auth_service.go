package ports

import (
	"context"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

// AuthService orchestrates registration and login. Login returns the signed
// session token alongside the user; the transport layer decides how the
// token travels (cookie, never the response body).
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
