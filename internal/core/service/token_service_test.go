package service

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

func TestTokenService_IssueValidate_Roundtrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(&domain.User{Username: "alice"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	subject, ok := svc.Validate(token)
	if !ok {
		t.Fatalf("expected token to validate")
	}
	if subject != "alice" {
		t.Fatalf("expected subject alice, got %q", subject)
	}
}

func TestTokenService_Validate_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Issue(&domain.User{Username: "alice"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, ok := NewTokenService("secret-b", time.Hour).Validate(token); ok {
		t.Fatalf("token signed with another key must not validate")
	}
}

func TestTokenService_Validate_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// Correctly signed but already expired.
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, ok := svc.Validate(expired); ok {
		t.Fatalf("expired token must not validate")
	}
}

func TestTokenService_Validate_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, ok := svc.Validate(token); ok {
			t.Fatalf("malformed token %q must not validate", token)
		}
	}
}

func TestTokenService_Validate_RejectsMissingSubject(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, ok := svc.Validate(token); ok {
		t.Fatalf("token without subject must not validate")
	}
}

func TestTokenService_SessionCookie(t *testing.T) {
	svc := NewTokenService("secret", 24*time.Hour)
	cookie := svc.SessionCookie("signed-token")

	if cookie.Name != "pizzeria_jwt" {
		t.Fatalf("unexpected cookie name %q", cookie.Name)
	}
	if cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value %q", cookie.Value)
	}
	if cookie.Path != "/api" {
		t.Fatalf("expected path /api, got %q", cookie.Path)
	}
	if cookie.MaxAge != 86400 {
		t.Fatalf("expected max-age 86400, got %d", cookie.MaxAge)
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be http-only")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie must be same-site lax")
	}
}

func TestTokenService_ClearingCookie(t *testing.T) {
	svc := NewTokenService("secret", 24*time.Hour)
	cookie := svc.ClearingCookie()

	if cookie.Name != svc.CookieName() {
		t.Fatalf("clearing cookie must reuse the session cookie name")
	}
	if cookie.Value != "" {
		t.Fatalf("clearing cookie must carry an empty value")
	}
	if cookie.MaxAge >= 0 {
		t.Fatalf("clearing cookie must expire immediately, got max-age %d", cookie.MaxAge)
	}
	if !strings.HasPrefix(cookie.Path, "/api") {
		t.Fatalf("clearing cookie must match the session cookie path")
	}
}
