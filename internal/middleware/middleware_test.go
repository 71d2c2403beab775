package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/db/dbtest"
	"github.com/BruksfildServices01/salon-booking/internal/domain/role"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
)

func TestAuthAndRoleGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := dbtest.New(t)
	alice := dbtest.User(t, db, "alice", "client")
	gone := dbtest.User(t, db, "gone", "client")
	inactive := dbtest.User(t, db, "idle", "client")
	db.Model(&inactive).Update("is_active", false)

	tokens := auth.NewTokenManager("test-secret", 30*time.Minute)
	issue := func(id auth.Identity) string {
		tok, err := tokens.Issue(id)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		return tok
	}

	aliceToken := issue(auth.Identity{UserID: alice.ID, Username: "alice", Role: "client"})
	goneToken := issue(auth.Identity{UserID: gone.ID, Username: "gone", Role: "client"})
	inactiveToken := issue(auth.Identity{UserID: inactive.ID, Username: "idle", Role: "client"})
	renamedToken := issue(auth.Identity{UserID: alice.ID, Username: "mallory", Role: "client"})
	db.Delete(&gone)

	r := gin.New()
	authed := AuthMiddleware(tokens, repository.NewUserGormRepository(db))
	r.GET("/me", authed, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUserID(c), "role": CurrentRole(c)})
	})
	r.GET("/admin", authed, RequireRole(role.Admin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"valid", "/me", "Bearer " + aliceToken, http.StatusOK},
		{"lowercase scheme", "/me", "bearer " + aliceToken, http.StatusOK},
		{"missing header", "/me", "", http.StatusUnauthorized},
		{"wrong scheme", "/me", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "/me", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"deleted user", "/me", "Bearer " + goneToken, http.StatusUnauthorized},
		{"inactive user", "/me", "Bearer " + inactiveToken, http.StatusUnauthorized},
		{"username mismatch", "/me", "Bearer " + renamedToken, http.StatusUnauthorized},
		{"role guard", "/admin", "Bearer " + aliceToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(0.001, 2)
	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := send("10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d within burst: got %d", i, code)
		}
	}
	if code := send("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}
	if code := send("10.0.0.2"); code != http.StatusOK {
		t.Errorf("other clients are limited separately, got %d", code)
	}
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.get("10.0.0.1")
	now = now.Add(time.Hour)
	rl.get("10.0.0.2")

	rl.evict(10 * time.Minute)

	if _, ok := rl.clients["10.0.0.1"]; ok {
		t.Error("idle client should be evicted")
	}
	if _, ok := rl.clients["10.0.0.2"]; !ok {
		t.Error("recent client should be kept")
	}
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options: got %q", got)
	}
}
