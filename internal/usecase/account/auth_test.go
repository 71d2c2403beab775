package account

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/db/dbtest"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	users := repository.NewUserGormRepository(dbtest.New(t))
	tokens := auth.NewTokenManager("secret", 30*time.Minute)

	register := NewRegister(users, audit.Discard{})
	login := NewLogin(users, tokens)

	u, err := register.Execute(ctx, RegisterInput{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Role != "client" {
		t.Errorf("default role should be client, got %s", u.Role)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email not normalized: %s", u.Email)
	}

	out, err := login.Execute(ctx, "alice", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.TokenType != "bearer" || out.ExpiresIn != 1800 {
		t.Errorf("unexpected login output: %+v", out)
	}

	id, err := tokens.Parse(out.AccessToken)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id.UserID != u.ID || id.Username != "alice" || id.Role != "client" {
		t.Errorf("unexpected identity %+v", id)
	}
}

func TestRegisterRejects(t *testing.T) {
	ctx := context.Background()
	users := repository.NewUserGormRepository(dbtest.New(t))
	register := NewRegister(users, audit.Discard{})

	if _, err := register.Execute(ctx, RegisterInput{Username: "bob", Email: "bob@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	tests := []struct {
		name string
		in   RegisterInput
		want error
	}{
		{"duplicate username", RegisterInput{Username: "bob", Email: "other@example.com", Password: "secret1"}, user.ErrUsernameTaken},
		{"duplicate email", RegisterInput{Username: "bobby", Email: "BOB@example.com", Password: "secret1"}, user.ErrEmailTaken},
		{"admin role", RegisterInput{Username: "eve", Email: "eve@example.com", Password: "secret1", Role: "admin"}, ErrInvalidRole},
		{"unknown role", RegisterInput{Username: "eve", Email: "eve@example.com", Password: "secret1", Role: "owner"}, ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := register.Execute(ctx, tt.in); err != tt.want {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	users := repository.NewUserGormRepository(dbtest.New(t))
	register := NewRegister(users, audit.Discard{})
	login := NewLogin(users, auth.NewTokenManager("secret", time.Minute))

	if _, err := register.Execute(ctx, RegisterInput{Username: "carol", Email: "carol@example.com", Password: "secret1", Role: "master"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := login.Execute(ctx, "carol", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: %v", err)
	}
	if _, err := login.Execute(ctx, "nobody", "secret1"); err != ErrInvalidCredentials {
		t.Errorf("unknown user: %v", err)
	}
}
