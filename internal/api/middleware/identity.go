package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
	"github.com/pizzeria/pizzeria-api/internal/core/ports"
)

// IdentityKey is the echo context key under which the resolved identity is
// stored. Handlers read it through handler.CurrentIdentity.
const IdentityKey = "identity"

// Identity resolves the session cookie into a request-scoped identity.
//
// It never rejects a request: a missing cookie, an invalid or expired
// token, an unknown subject or any store error all leave the request
// anonymous so public endpoints keep working. Authorization decisions are
// made downstream per operation.
func Identity(tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(tokens.CookieName())
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			subject, ok := tokens.Validate(cookie.Value)
			if !ok {
				log.Debug().Msg("invalid session token, proceeding anonymous")
				return next(c)
			}

			user, err := users.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				if err != domain.ErrUserNotFound {
					log.Warn().Err(err).Str("subject", subject).Msg("identity lookup failed, proceeding anonymous")
				}
				return next(c)
			}

			c.Set(IdentityKey, &domain.Identity{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
				Role:     user.Role,
			})

			return next(c)
		}
	}
}
