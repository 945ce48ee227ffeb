package ports

import (
	"net/http"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

// TokenService issues and validates the signed session tokens carried in
// the application cookie.
type TokenService interface {
	// Issue signs a token with subject = user.Username, valid for the
	// configured TTL.
	Issue(user *domain.User) (string, error)
	// Validate verifies signature and expiry. It is pure: any malformed,
	// tampered or expired token yields ok=false, never an error or panic.
	Validate(token string) (subject string, ok bool)
	// SessionCookie wraps a signed token in the application cookie.
	SessionCookie(token string) *http.Cookie
	// ClearingCookie returns a cookie with the same name and an immediate
	// expiry, instructing the client to drop its token.
	ClearingCookie() *http.Cookie
	// CookieName is the cookie the identity middleware reads.
	CookieName() string
}
