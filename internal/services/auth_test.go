package services

import (
	"net/http"
	"testing"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/utils"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	jwtCfg := &config.JWTConfig{Secret: "test-secret", ExpireHour: 1}
	utils.SetJWTSecret(jwtCfg.Secret)
	return NewAuthService(setupTestDB(t), jwtCfg)
}

func TestRegister(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(&RegisterRequest{
		Username:     "alice",
		Password:     "secret123",
		Confirmation: "secret123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.User.Role != "user" {
		t.Fatalf("expected role user, got %q", resp.User.Role)
	}
	if resp.User.Password == "secret123" {
		t.Fatal("password stored in plaintext")
	}

	claims, err := utils.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.UserID != resp.User.ID || claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&RegisterRequest{
		Username:     "alice",
		Password:     "secret123",
		Confirmation: "different",
	})
	assertAppError(t, err, http.StatusBadRequest)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := newAuthService(t)

	req := &RegisterRequest{Username: "alice", Password: "secret123", Confirmation: "secret123"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := svc.Register(req)
	assertAppError(t, err, http.StatusConflict)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register(&RegisterRequest{
		Username: "alice", Password: "secret123", Confirmation: "secret123",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := svc.Login(&LoginRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}

	_, err = svc.Login(&LoginRequest{Username: "alice", Password: "wrong"})
	assertAppError(t, err, http.StatusUnauthorized)

	_, err = svc.Login(&LoginRequest{Username: "nobody", Password: "secret123"})
	assertAppError(t, err, http.StatusUnauthorized)
}

func TestChangePassword(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(&RegisterRequest{
		Username: "alice", Password: "secret123", Confirmation: "secret123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	err = svc.ChangePassword(resp.User.ID, &ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newsecret",
	})
	assertAppError(t, err, http.StatusBadRequest)

	err = svc.ChangePassword(resp.User.ID, &ChangePasswordRequest{
		OldPassword: "secret123",
		NewPassword: "newsecret",
	})
	if err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	if _, err := svc.Login(&LoginRequest{Username: "alice", Password: "newsecret"}); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	_, err = svc.Login(&LoginRequest{Username: "alice", Password: "secret123"})
	assertAppError(t, err, http.StatusUnauthorized)
}

func TestCreateAdminIfNotExists(t *testing.T) {
	svc := newAuthService(t)

	if err := svc.CreateAdminIfNotExists(); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if err := svc.CreateAdminIfNotExists(); err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	resp, err := svc.Login(&LoginRequest{Username: "admin", Password: "admin"})
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	if resp.User.Role != "admin" {
		t.Fatalf("expected admin role, got %q", resp.User.Role)
	}
}
