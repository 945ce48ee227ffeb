package service

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

const (
	sessionCookieName = "pizzeria_jwt"
	sessionCookiePath = "/api"
)

// TokenService signs and validates the HS256 session tokens carried in the
// application cookie. The signing key is loaded once at startup and
// read-only afterwards.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token with subject = user.Username, issued now and expiring
// after the configured TTL.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the encoded subject.
// It never returns an error: malformed tokens, signature mismatches and
// elapsed expiries all report ok=false so callers degrade to anonymous.
func (s *TokenService) Validate(token string) (string, bool) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

// SessionCookie wraps a signed token in the application cookie: http-only,
// path-scoped to the API root, same-site lax. Not marked Secure so local
// plain-HTTP deployments keep working.
func (s *TokenService) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     sessionCookiePath,
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearingCookie returns a cookie with the same name and immediate expiry
// so the client forgets its token. The token itself stays valid until its
// natural expiry; there is no server-side denylist.
func (s *TokenService) ClearingCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     sessionCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *TokenService) CookieName() string {
	return sessionCookieName
}
