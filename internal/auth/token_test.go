package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", 30*time.Minute)

	token, err := m.Issue(Identity{UserID: 7, Username: "alice", Role: "client"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id.UserID != 7 || id.Username != "alice" || id.Role != "client" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestTokenRejected(t *testing.T) {
	issuedAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	m := NewTokenManager("secret", 30*time.Minute)
	m.now = func() time.Time { return issuedAt }

	valid, err := m.Issue(Identity{UserID: 1, Username: "alice", Role: "client"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name  string
		token func(t *testing.T) string
		now   time.Time
	}{
		{
			name:  "expired",
			token: func(*testing.T) string { return valid },
			now:   issuedAt.Add(31 * time.Minute),
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := NewTokenManager("other", time.Minute)
				other.now = m.now
				s, err := other.Issue(Identity{UserID: 1, Username: "alice", Role: "client"})
				if err != nil {
					t.Fatal(err)
				}
				return s
			},
			now: issuedAt,
		},
		{
			name: "missing role",
			token: func(t *testing.T) string {
				return sign(t, jwt.MapClaims{
					"sub":     "alice",
					"user_id": 1,
					"exp":     issuedAt.Add(time.Minute).Unix(),
				})
			},
			now: issuedAt,
		},
		{
			name: "missing user id",
			token: func(t *testing.T) string {
				return sign(t, jwt.MapClaims{
					"sub":  "alice",
					"role": "client",
					"exp":  issuedAt.Add(time.Minute).Unix(),
				})
			},
			now: issuedAt,
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				return sign(t, jwt.MapClaims{
					"user_id": 1,
					"role":    "client",
					"exp":     issuedAt.Add(time.Minute).Unix(),
				})
			},
			now: issuedAt,
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				return sign(t, jwt.MapClaims{
					"sub":     "alice",
					"user_id": 1,
					"role":    "client",
				})
			},
			now: issuedAt,
		},
		{
			name: "unsigned",
			token: func(t *testing.T) string {
				tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"sub":     "alice",
					"user_id": 1,
					"role":    "admin",
					"exp":     issuedAt.Add(time.Minute).Unix(),
				})
				s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
				if err != nil {
					t.Fatal(err)
				}
				return s
			},
			now: issuedAt,
		},
		{
			name:  "garbage",
			token: func(*testing.T) string { return "not-a-token" },
			now:   issuedAt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.now
			m.now = func() time.Time { return now }

			if _, err := m.Parse(tt.token(t)); err != ErrInvalidToken {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("password stored in clear")
	}
	if !CheckPassword(hash, "secret1") {
		t.Error("expected password to match")
	}
	if CheckPassword(hash, "secret2") {
		t.Error("expected mismatch")
	}
}

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}
