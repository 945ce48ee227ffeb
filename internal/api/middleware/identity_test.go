package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
	"github.com/pizzeria/pizzeria-api/internal/core/service"
)

type stubUserRepo struct {
	user *domain.User
	err  error
}

func (r *stubUserRepo) Create(_ context.Context, _ *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.user == nil || r.user.Username != username {
		return nil, domain.ErrUserNotFound
	}
	clone := *r.user
	return &clone, nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

// runIdentity passes a request through the middleware and reports the
// identity the downstream handler observed.
func runIdentity(t *testing.T, tokens *service.TokenService, users *stubUserRepo, cookie *http.Cookie) (*domain.Identity, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/pizzas", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		identity *domain.Identity
		reached  bool
	)
	next := func(c echo.Context) error {
		reached = true
		identity, _ = c.Get(IdentityKey).(*domain.Identity)
		return nil
	}

	mw := Identity(tokens, users, zerolog.Nop())
	if err := mw(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !reached {
		t.Fatalf("middleware must always invoke the next handler")
	}
	return identity, identity != nil
}

func TestIdentity_ValidCookie(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	users := &stubUserRepo{user: &domain.User{
		ID:       "u1",
		Username: "carlos",
		Email:    "carlos@gmail.com",
		Role:     domain.RoleUser,
	}}

	token, err := tokens.Issue(users.user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	identity, ok := runIdentity(t, tokens, users, &http.Cookie{Name: tokens.CookieName(), Value: token})
	if !ok {
		t.Fatalf("expected an authenticated identity")
	}
	if identity.Username != "carlos" || identity.Role != domain.RoleUser {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestIdentity_NoCookie(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	if _, ok := runIdentity(t, tokens, &stubUserRepo{}, nil); ok {
		t.Fatalf("request without cookie must stay anonymous")
	}
}

func TestIdentity_InvalidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	if _, ok := runIdentity(t, tokens, &stubUserRepo{}, &http.Cookie{Name: tokens.CookieName(), Value: "garbage"}); ok {
		t.Fatalf("invalid token must stay anonymous")
	}
}

func TestIdentity_TokenSignedWithOtherKey(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	other := service.NewTokenService("other", time.Hour)

	token, err := other.Issue(&domain.User{Username: "carlos"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, ok := runIdentity(t, tokens, &stubUserRepo{}, &http.Cookie{Name: tokens.CookieName(), Value: token}); ok {
		t.Fatalf("foreign signature must stay anonymous")
	}
}

func TestIdentity_SubjectNoLongerExists(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	token, err := tokens.Issue(&domain.User{Username: "deleted"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, ok := runIdentity(t, tokens, &stubUserRepo{}, &http.Cookie{Name: tokens.CookieName(), Value: token}); ok {
		t.Fatalf("unknown subject must stay anonymous")
	}
}

func TestIdentity_StoreErrorDegradesToAnonymous(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	users := &stubUserRepo{err: errors.New("connection reset")}

	token, err := tokens.Issue(&domain.User{Username: "carlos"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, ok := runIdentity(t, tokens, users, &http.Cookie{Name: tokens.CookieName(), Value: token}); ok {
		t.Fatalf("store failure must degrade to anonymous, not fail the request")
	}
}
