package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzeria/pizzeria-api/internal/api/middleware"
	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

// CurrentIdentity returns the identity the middleware attached to the
// request, or (nil, false) for anonymous requests.
func CurrentIdentity(c echo.Context) (*domain.Identity, bool) {
	identity, ok := c.Get(middleware.IdentityKey).(*domain.Identity)
	return identity, ok && identity != nil
}

// requireIdentity is the explicit capability check placed at the top of
// every authenticated operation. Anonymous requests get a 401.
func requireIdentity(c echo.Context) (*domain.Identity, error) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}

// requireAdmin guards admin-only operations: 401 when anonymous, 403 when
// authenticated without the ADMIN role.
func requireAdmin(c echo.Context) (*domain.Identity, error) {
	identity, err := requireIdentity(c)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin() {
		return nil, echo.NewHTTPError(http.StatusForbidden, "admin role required")
	}
	return identity, nil
}
