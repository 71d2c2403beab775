package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/role"
	"github.com/BruksfildServices01/salon-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

var (
	ErrForbidden       = httperr.ErrForbidden("forbidden")
	ErrSessionMismatch = httperr.ErrBusiness("session_mismatch")
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientID  uint
	SessionID uint

	// Optional; when set they must match the session.
	ServiceID uint
	MasterID  uint
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	sessions schedule.SessionRepository
	audit    audit.Sink
}

func NewBookAppointment(
	repo domain.Repository,
	sessions schedule.SessionRepository,
	audit audit.Sink,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		sessions: sessions,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	actor role.Actor,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Clients book only for themselves
	// --------------------------------------------------
	if actor.UserID != in.ClientID {
		return nil, ErrForbidden
	}

	// --------------------------------------------------
	// 2. Session must exist and be open
	// --------------------------------------------------
	session, err := uc.sessions.Get(ctx, in.SessionID)
	if err != nil {
		if httperr.IsBusiness(err, "session_not_found") {
			return nil, domain.ErrSessionUnavailable
		}
		return nil, err
	}
	if !session.IsAvailable {
		return nil, domain.ErrSessionUnavailable
	}

	if in.ServiceID != 0 && in.ServiceID != session.ServiceID {
		return nil, ErrSessionMismatch
	}
	if in.MasterID != 0 && in.MasterID != session.MasterID {
		return nil, ErrSessionMismatch
	}

	// --------------------------------------------------
	// 3. Flip availability and create, atomically
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:  in.ClientID,
		SessionID: session.ID,
		ServiceID: session.ServiceID,
		MasterID:  session.MasterID,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.Book(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   audit.ActionAppointmentBooked,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"session_id": session.ID},
	})

	return ap, nil
}
