package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/db/dbtest"
	"github.com/BruksfildServices01/salon-booking/internal/domain/role"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type env struct {
	f        dbtest.Fixture
	sessions *Sessions
	shifts   *Shifts
	master   role.Actor
}

func newEnv(t *testing.T, loc *time.Location) env {
	t.Helper()

	db := dbtest.New(t)
	f := dbtest.Seed(t, db)

	sessionRepo := repository.NewSessionGormRepository(db)
	shiftRepo := repository.NewShiftGormRepository(db)
	masterRepo := repository.NewMasterGormRepository(db)
	serviceRepo := repository.NewServiceGormRepository(db)

	return env{
		f:        f,
		sessions: NewSessions(sessionRepo, shiftRepo, masterRepo, serviceRepo, loc),
		shifts:   NewShifts(shiftRepo, masterRepo, loc),
		master:   role.Actor{UserID: f.MasterUser.ID, Role: role.Master},
	}
}

func strp(s string) *string { return &s }

func TestCreateSessionForOwnProfile(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, time.UTC)

	s, err := e.sessions.Create(ctx, e.master, SessionInput{
		MasterID:  999, // ignored for masters
		ServiceID: e.f.Service.ID,
		Date:      "2026-05-05",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.MasterID != e.f.Master.ID {
		t.Errorf("session should belong to the caller's profile, got master %d", s.MasterID)
	}
	if !s.IsAvailable {
		t.Error("new sessions are available")
	}
	want := time.Date(2026, 5, 5, 9, 0, 0, 0, time.UTC)
	if !s.StartTime.Equal(want) {
		t.Errorf("start: got %v, want %v", s.StartTime, want)
	}
}

func TestCreateSessionMustFitShift(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, time.UTC)

	if _, err := e.shifts.Create(ctx, e.f.MasterUser.ID, ShiftInput{
		Date:      strp("2026-05-06"),
		StartTime: strp("09:00"),
		EndTime:   strp("13:00"),
	}); err != nil {
		t.Fatalf("shift: %v", err)
	}

	in := SessionInput{ServiceID: e.f.Service.ID, Date: "2026-05-06", StartTime: "12:30", EndTime: "13:30"}
	if _, err := e.sessions.Create(ctx, e.master, in); !errors.Is(err, domain.ErrOutsideShift) {
		t.Fatalf("expected outside_shift, got %v", err)
	}

	in.StartTime, in.EndTime = "12:00", "13:00"
	if _, err := e.sessions.Create(ctx, e.master, in); err != nil {
		t.Fatalf("session inside shift: %v", err)
	}
}

func TestCreateSessionRejectsBadWindow(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, time.UTC)

	tests := []struct {
		name string
		in   SessionInput
		want error
	}{
		{"bad date", SessionInput{Date: "05/06/2026", StartTime: "09:00", EndTime: "10:00"}, timezone.ErrInvalidDate},
		{"end before start", SessionInput{Date: "2026-05-06", StartTime: "10:00", EndTime: "09:00"}, timezone.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.ServiceID = e.f.Service.ID
			if _, err := e.sessions.Create(ctx, e.master, tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMasterOnlyTouchesOwnSessions(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	f := dbtest.Seed(t, db)

	other := dbtest.User(t, db, "otto", "master")
	dbtest.Create(t, db, &models.Master{UserID: other.ID, Name: "Otto"})

	sessions := NewSessions(
		repository.NewSessionGormRepository(db),
		repository.NewShiftGormRepository(db),
		repository.NewMasterGormRepository(db),
		repository.NewServiceGormRepository(db),
		time.UTC,
	)
	intruder := role.Actor{UserID: other.ID, Role: role.Master}

	if _, err := sessions.SetAvailability(ctx, intruder, f.Session.ID, false); !errors.Is(err, ErrForbidden) {
		t.Errorf("availability: got %v", err)
	}
	if err := sessions.Delete(ctx, intruder, f.Session.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("delete: got %v", err)
	}
	if _, err := sessions.SetAvailability(ctx, intruder, f.Session.ID+100, false); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("missing session: got %v", err)
	}

	owner := role.Actor{UserID: f.MasterUser.ID, Role: role.Master}
	s, err := sessions.SetAvailability(ctx, owner, f.Session.ID, false)
	if err != nil {
		t.Fatalf("owner: %v", err)
	}
	if s.IsAvailable {
		t.Error("session should be closed")
	}
}

func TestReopenBlockedByActiveAppointment(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	f := dbtest.Seed(t, db)

	if err := repository.NewAppointmentGormRepository(db).Book(ctx, &models.Appointment{
		ClientID:  f.Client.ID,
		SessionID: f.Session.ID,
		ServiceID: f.Service.ID,
		MasterID:  f.Master.ID,
		Status:    "booked",
	}); err != nil {
		t.Fatalf("book: %v", err)
	}

	sessions := NewSessions(
		repository.NewSessionGormRepository(db),
		repository.NewShiftGormRepository(db),
		repository.NewMasterGormRepository(db),
		repository.NewServiceGormRepository(db),
		time.UTC,
	)
	owner := role.Actor{UserID: f.MasterUser.ID, Role: role.Master}

	if _, err := sessions.SetAvailability(ctx, owner, f.Session.ID, true); !errors.Is(err, domain.ErrHasBooking) {
		t.Errorf("reopen: got %v", err)
	}
	if err := sessions.Delete(ctx, owner, f.Session.ID); !errors.Is(err, domain.ErrHasBooking) {
		t.Errorf("delete: got %v", err)
	}
}

func TestScheduleUsesSalonDay(t *testing.T) {
	ctx := context.Background()

	// 10:00 UTC is 07:00 in São Paulo, still May 4th there.
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skip("tzdata not available")
	}
	e := newEnv(t, loc)

	got, err := e.sessions.Schedule(ctx, e.f.MasterUser.ID, "2026-05-04")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(got) != 1 || got[0].ID != e.f.Session.ID {
		t.Fatalf("expected the seeded session, got %+v", got)
	}

	got, err = e.sessions.Available(ctx, e.f.Master.ID, "2026-05-03")
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected nothing on the previous day, got %d", len(got))
	}

	if _, err := e.sessions.Available(ctx, e.f.Master.ID, "not-a-date"); !errors.Is(err, timezone.ErrInvalidDate) {
		t.Errorf("invalid date: got %v", err)
	}
}

func TestShiftPartialUpdate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, time.UTC)

	s, err := e.shifts.Create(ctx, e.f.MasterUser.ID, ShiftInput{
		Date:      strp("2026-05-06"),
		StartTime: strp("09:00"),
		EndTime:   strp("13:00"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := e.shifts.Update(ctx, e.f.MasterUser.ID, s.ID, ShiftInput{EndTime: strp("17:00")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !got.StartTime.Equal(s.StartTime) {
		t.Errorf("start changed: %v -> %v", s.StartTime, got.StartTime)
	}
	if want := time.Date(2026, 5, 6, 17, 0, 0, 0, time.UTC); !got.EndTime.Equal(want) {
		t.Errorf("end: got %v, want %v", got.EndTime, want)
	}
}
