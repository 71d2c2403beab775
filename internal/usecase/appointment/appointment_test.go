package appointment

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/db/dbtest"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/role"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

type recorder struct {
	events []audit.Event
}

func (r *recorder) Dispatch(ev audit.Event) {
	r.events = append(r.events, ev)
}

type env struct {
	db     *gorm.DB
	f      dbtest.Fixture
	audit  *recorder
	book   *BookAppointment
	change *ChangeStatus
	list   *ListAppointments
	client role.Actor
}

func newEnv(t *testing.T) env {
	t.Helper()

	db := dbtest.New(t)
	f := dbtest.Seed(t, db)
	rec := &recorder{}

	appointments := repository.NewAppointmentGormRepository(db)
	sessions := repository.NewSessionGormRepository(db)
	masters := repository.NewMasterGormRepository(db)

	return env{
		db:     db,
		f:      f,
		audit:  rec,
		book:   NewBookAppointment(appointments, sessions, rec),
		change: NewChangeStatus(appointments, masters, rec),
		list:   NewListAppointments(appointments, masters),
		client: role.Actor{UserID: f.Client.ID, Role: role.Client},
	}
}

func (e env) bookSeeded(t *testing.T) *models.Appointment {
	t.Helper()

	ap, err := e.book.Execute(context.Background(), e.client, BookAppointmentInput{
		ClientID:  e.f.Client.ID,
		SessionID: e.f.Session.ID,
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	return ap
}

func TestBookAppointment(t *testing.T) {
	e := newEnv(t)

	ap, err := e.book.Execute(context.Background(), e.client, BookAppointmentInput{
		ClientID:  e.f.Client.ID,
		SessionID: e.f.Session.ID,
		ServiceID: e.f.Service.ID,
		MasterID:  e.f.Master.ID,
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if ap.Status != string(domain.StatusBooked) {
		t.Errorf("status: got %s", ap.Status)
	}
	if ap.MasterID != e.f.Master.ID || ap.ServiceID != e.f.Service.ID {
		t.Errorf("appointment should copy master and service from the session: %+v", ap)
	}
	if len(e.audit.events) != 1 || e.audit.events[0].Action != audit.ActionAppointmentBooked {
		t.Errorf("expected one booked audit event, got %+v", e.audit.events)
	}

	var s models.Session
	e.db.First(&s, e.f.Session.ID)
	if s.IsAvailable {
		t.Error("session should be unavailable")
	}
}

func TestBookAppointmentRejects(t *testing.T) {
	e := newEnv(t)
	other := dbtest.User(t, e.db, "bob", "client")
	bob := role.Actor{UserID: other.ID, Role: role.Client}

	tests := []struct {
		name  string
		actor role.Actor
		in    BookAppointmentInput
		want  error
	}{
		{"another client id", bob, BookAppointmentInput{ClientID: e.f.Client.ID, SessionID: e.f.Session.ID}, ErrForbidden},
		{"missing session", e.client, BookAppointmentInput{ClientID: e.f.Client.ID, SessionID: 999}, domain.ErrSessionUnavailable},
		{"wrong service", e.client, BookAppointmentInput{ClientID: e.f.Client.ID, SessionID: e.f.Session.ID, ServiceID: 999}, ErrSessionMismatch},
		{"wrong master", e.client, BookAppointmentInput{ClientID: e.f.Client.ID, SessionID: e.f.Session.ID, MasterID: 999}, ErrSessionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.book.Execute(context.Background(), tt.actor, tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}

	e.bookSeeded(t)
	if _, err := e.book.Execute(context.Background(), bob, BookAppointmentInput{
		ClientID:  other.ID,
		SessionID: e.f.Session.ID,
	}); !errors.Is(err, domain.ErrSessionUnavailable) {
		t.Errorf("booking a taken session: got %v", err)
	}
}

func TestClientCancelReleasesSession(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	ap := e.bookSeeded(t)

	if _, err := e.change.Execute(ctx, e.client, ap.ID, domain.StatusCompleted); !errors.Is(err, ErrForbidden) {
		t.Errorf("client completing: got %v", err)
	}

	got, err := e.change.Execute(ctx, e.client, ap.ID, domain.StatusCancelled)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Status != string(domain.StatusCancelled) || got.CancelledAt == nil {
		t.Errorf("unexpected appointment %+v", got)
	}

	var s models.Session
	e.db.First(&s, e.f.Session.ID)
	if !s.IsAvailable {
		t.Error("cancel should release the session")
	}

	if _, err := e.change.Execute(ctx, e.client, ap.ID, domain.StatusCancelled); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("cancelling twice: got %v", err)
	}
}

func TestMasterTransitionsOwnAppointments(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	ap := e.bookSeeded(t)

	otherUser := dbtest.User(t, e.db, "otto", "master")
	dbtest.Create(t, e.db, &models.Master{UserID: otherUser.ID, Name: "Otto"})

	intruder := role.Actor{UserID: otherUser.ID, Role: role.Master}
	if _, err := e.change.Execute(ctx, intruder, ap.ID, domain.StatusCompleted); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign master: got %v", err)
	}

	bare := dbtest.User(t, e.db, "nadia", "master")
	noProfile := role.Actor{UserID: bare.ID, Role: role.Master}
	if _, err := e.change.Execute(ctx, noProfile, ap.ID, domain.StatusCancelled); !errors.Is(err, ErrForbidden) {
		t.Errorf("master without profile: got %v", err)
	}

	owner := role.Actor{UserID: e.f.MasterUser.ID, Role: role.Master}
	got, err := e.change.Execute(ctx, owner, ap.ID, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got.CompletedAt == nil {
		t.Error("completed_at not set")
	}

	if _, err := e.change.Execute(ctx, owner, ap.ID, domain.StatusCancelled); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("completed is terminal: got %v", err)
	}
}

func TestListAppointments(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.bookSeeded(t)

	mine, err := e.list.ForClient(ctx, e.f.Client.ID, pagination.Default())
	if err != nil {
		t.Fatalf("client list: %v", err)
	}
	if len(mine) != 1 || mine[0].ServiceName != "Haircut" {
		t.Fatalf("unexpected client list %+v", mine)
	}

	theirs, err := e.list.ForMasterUser(ctx, e.f.MasterUser.ID, pagination.Default())
	if err != nil {
		t.Fatalf("master list: %v", err)
	}
	if len(theirs) != 1 || theirs[0].ClientName != "alice" {
		t.Fatalf("unexpected master list %+v", theirs)
	}
}
