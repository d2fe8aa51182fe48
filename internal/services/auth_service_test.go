package services

import (
	"errors"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register("Student@Example.com", "hunter2secret", "Ada")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "student@example.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}
	if user.Token == "" {
		t.Error("no token issued at registration")
	}
	if user.PasswordHash == "hunter2secret" {
		t.Error("password stored in clear")
	}

	// duplicate email
	if _, err := svc.Register("student@example.com", "hunter2secret", ""); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate err = %v, want ErrConflict", err)
	}

	// login rotates the token
	loggedIn, err := svc.Login("student@example.com", "hunter2secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.Token == user.Token {
		t.Error("token not rotated on login")
	}

	if _, err := svc.Login("student@example.com", "wrongpassword"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("bad password err = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Login("nobody@example.com", "hunter2secret"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("unknown user err = %v, want ErrUnauthorized", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	if _, err := svc.Register("not-an-email", "hunter2secret", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("bad email err = %v, want ErrValidation", err)
	}
	if _, err := svc.Register("a@b.com", "short", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("short password err = %v, want ErrValidation", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	admin, err := svc.EnsureAdmin("Admin@Example.com", "adminsecret1")
	if err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	if admin.Role != "ADMIN" {
		t.Errorf("role = %s, want ADMIN", admin.Role)
	}
	if admin.Email != "admin@example.com" {
		t.Errorf("email = %q, want lowercased", admin.Email)
	}

	// idempotent across restarts
	again, err := svc.EnsureAdmin("admin@example.com", "adminsecret1")
	if err != nil {
		t.Fatalf("second EnsureAdmin failed: %v", err)
	}
	if again.ID != admin.ID {
		t.Errorf("got user %d, want existing %d", again.ID, admin.ID)
	}

	// seeded admin can log in like anyone else
	if _, err := svc.Login("admin@example.com", "adminsecret1"); err != nil {
		t.Errorf("admin login failed: %v", err)
	}

	// bad seed input surfaces validation errors instead of a broken account
	if _, err := svc.EnsureAdmin("new-admin@example.com", "short"); !errors.Is(err, ErrValidation) {
		t.Errorf("short password err = %v, want ErrValidation", err)
	}
}

func TestEnsureAdminPromotesExistingUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	student, err := svc.Register("lead@example.com", "hunter2secret", "Lead")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	promoted, err := svc.EnsureAdmin("lead@example.com", "ignored-password")
	if err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	if promoted.ID != student.ID {
		t.Errorf("promoted user %d, want existing %d", promoted.ID, student.ID)
	}
	if promoted.Role != "ADMIN" {
		t.Errorf("role = %s, want ADMIN", promoted.Role)
	}
}

func TestUserByToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register("token@example.com", "hunter2secret", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resolved, err := svc.UserByToken(user.Token)
	if err != nil {
		t.Fatalf("UserByToken failed: %v", err)
	}
	if resolved.ID != user.ID {
		t.Errorf("resolved user %d, want %d", resolved.ID, user.ID)
	}

	if _, err := svc.UserByToken(""); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("empty token err = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.UserByToken("bogus"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("bogus token err = %v, want ErrUnauthorized", err)
	}
}
