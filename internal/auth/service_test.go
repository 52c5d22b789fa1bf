package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	user, err := service.Register("Test User", "Test@Example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ID == "" {
		t.Error("expected generated user id")
	}
	if user.Email != "test@example.com" {
		t.Errorf("email not lowercased: %q", user.Email)
	}
	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test User", "test@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Login("TEST@example.com", "Password@123"); err != nil {
		t.Errorf("login with correct password: %v", err)
	}
	if _, err := service.Login("test@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Login("nobody@example.com", "Password@123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test User", "test@example.com", "OldPassword@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.ResetPassword("test@example.com", "NewPassword@123"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	if _, err := service.Login("test@example.com", "NewPassword@123"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, err := service.Login("test@example.com", "OldPassword@123"); err == nil {
		t.Error("old password still accepted")
	}
}

func TestResetPasswordUnknownUser(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if err := service.ResetPassword("nobody@example.com", "Password@123"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
