package dbtest

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// Day is the calendar day every seeded session falls on.
var Day = time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

// Fixture is a client, a master with a profile, one service and one open
// session at 10:00 UTC on Day.
type Fixture struct {
	Client     models.User
	MasterUser models.User
	Master     models.Master
	Service    models.Service
	Session    models.Session
}

func Seed(t testing.TB, db *gorm.DB) Fixture {
	t.Helper()

	var f Fixture
	f.Client = User(t, db, "alice", "client")
	f.MasterUser = User(t, db, "marta", "master")

	f.Master = models.Master{UserID: f.MasterUser.ID, Name: "Marta", Specialization: "Color"}
	Create(t, db, &f.Master)

	f.Service = models.Service{Name: "Haircut", Duration: 60, Price: 30}
	Create(t, db, &f.Service)

	f.Session = Session(t, db, f.Master.ID, f.Service.ID, Day.Add(10*time.Hour))
	return f
}

// User creates an active user; the password hash is not a real bcrypt hash.
func User(t testing.TB, db *gorm.DB, username, role string) models.User {
	t.Helper()

	u := models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	}
	Create(t, db, &u)
	return u
}

// Session creates an open one-hour session starting at start (UTC).
func Session(t testing.TB, db *gorm.DB, masterID, serviceID uint, start time.Time) models.Session {
	t.Helper()

	start = start.UTC()
	s := models.Session{
		MasterID:    masterID,
		ServiceID:   serviceID,
		Date:        time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		IsAvailable: true,
	}
	Create(t, db, &s)
	return s
}

func Create(t testing.TB, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}
