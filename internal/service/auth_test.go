package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(repo *memUserRepo) (AuthService, *TokenManager) {
	tokens := NewTokenManager("test-secret", time.Hour)
	return NewAuthService(repo, tokens, bcrypt.MinCost, zap.NewNop()), tokens
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		repo := newMemUserRepo()
		svc, _ := newAuthService(repo)

		user, err := svc.Signup(ctx, "al", "p", "admin")
		if err != nil {
			t.Fatalf("Signup: %v", err)
		}
		if user.ID == "" {
			t.Error("user ID not assigned")
		}
		if user.Role != "admin" {
			t.Errorf("Role: got %q, want admin", user.Role)
		}
		if user.PasswordHash == "p" {
			t.Error("password stored in plaintext")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("p")); err != nil {
			t.Errorf("stored hash does not verify against the password: %v", err)
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		repo := newMemUserRepo()
		svc, _ := newAuthService(repo)

		if _, err := svc.Signup(ctx, "al", "p", "superuser"); !errors.Is(err, ErrInvalidRole) {
			t.Errorf("Signup: got %v, want ErrInvalidRole", err)
		}
		if len(repo.users) != 0 {
			t.Errorf("store has %d users, want 0", len(repo.users))
		}
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		repo := newMemUserRepo()
		svc, _ := newAuthService(repo)

		if _, err := svc.Signup(ctx, "al", "p", "admin"); err != nil {
			t.Fatalf("first Signup: %v", err)
		}
		if _, err := svc.Signup(ctx, "al", "other", "user"); !errors.Is(err, ErrUserAlreadyExists) {
			t.Errorf("second Signup: got %v, want ErrUserAlreadyExists", err)
		}
		if len(repo.users) != 1 {
			t.Errorf("store has %d users, want exactly 1", len(repo.users))
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues verifiable token", func(t *testing.T) {
		repo := newMemUserRepo()
		svc, tokens := newAuthService(repo)

		user, err := svc.Signup(ctx, "al", "p", "admin")
		if err != nil {
			t.Fatalf("Signup: %v", err)
		}

		token, err := svc.Login(ctx, "al", "p")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if claims.Subject != user.ID {
			t.Errorf("Subject: got %q, want %q", claims.Subject, user.ID)
		}
		if claims.Role != "admin" {
			t.Errorf("Role: got %q, want admin", claims.Role)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := newMemUserRepo()
		svc, _ := newAuthService(repo)

		if _, err := svc.Signup(ctx, "al", "p", "admin"); err != nil {
			t.Fatalf("Signup: %v", err)
		}
		if _, err := svc.Login(ctx, "al", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login: got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _ := newAuthService(newMemUserRepo())

		if _, err := svc.Login(ctx, "nobody", "p"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login: got %v, want ErrInvalidCredentials", err)
		}
	})
}
