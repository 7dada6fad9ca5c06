package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/markethub/catalog-api/internal/core/domain"
)

func TestAuthHandler_LoginJSON(t *testing.T) {
	user := testUser(domain.RoleUser)
	auth := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "actor@example.com" || password != "password123" {
				t.Fatalf("credentials not forwarded: %s / %s", email, password)
			}
			return "signed-token", user, nil
		},
	}
	h := NewAuthHandler(auth)

	c, rec := newContext(http.MethodPost, "/auth/login-json", `{"email":"actor@example.com","password":"password123"}`)
	if err := h.LoginJSON(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenWithUserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.AccessToken != "signed-token" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected token envelope: %+v", resp)
	}
	if resp.User.Email != user.Email {
		t.Fatalf("user not echoed: %+v", resp.User)
	}
}

func TestAuthHandler_LoginJSON_BadCredentials(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(auth)

	c, _ := newContext(http.MethodPost, "/auth/login-json", `{"email":"actor@example.com","password":"wrongpass"}`)
	if err := h.LoginJSON(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_LoginJSON_MissingEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newContext(http.MethodPost, "/auth/login-json", `{"password":"password123"}`)
	err := h.LoginJSON(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_LoginForm(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "actor@example.com" || password != "password123" {
				t.Fatalf("form fields not forwarded: %s / %s", email, password)
			}
			return "signed-token", testUser(domain.RoleUser), nil
		},
	}
	h := NewAuthHandler(auth)

	c, rec := newFormContext("/auth/login", "username=actor%40example.com&password=password123")
	if err := h.LoginForm(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.AccessToken != "signed-token" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected token envelope: %+v", resp)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newContext(http.MethodPost, "/auth/logout", "")
	withActor(c, testUser(domain.RoleUser))
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newContext(http.MethodPost, "/auth/logout", "")
	err := h.Logout(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	actor := testUser(domain.RoleUser)
	auth := &stubAuthService{
		changePasswordFn: func(_ context.Context, got *domain.User, current, next string) error {
			if got.ID != actor.ID {
				t.Fatalf("wrong actor forwarded")
			}
			if current != "password123" || next != "newpassword1" {
				t.Fatalf("passwords not forwarded: %s / %s", current, next)
			}
			return nil
		},
	}
	h := NewAuthHandler(auth)

	c, rec := newContext(http.MethodPost, "/auth/change-password", `{"current_password":"password123","new_password":"newpassword1"}`)
	withActor(c, actor)
	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_ChangePassword_ShortNewPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newContext(http.MethodPost, "/auth/change-password", `{"current_password":"password123","new_password":"short"}`)
	withActor(c, testUser(domain.RoleUser))
	err := h.ChangePassword(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
