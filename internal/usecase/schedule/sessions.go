package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/domain/role"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

var ErrForbidden = httperr.ErrForbidden("forbidden")

type SessionInput struct {
	MasterID  uint
	ServiceID uint
	Date      string
	StartTime string
	EndTime   string
}

type Sessions struct {
	sessions domain.SessionRepository
	shifts   domain.ShiftRepository
	masters  catalog.MasterRepository
	services catalog.ServiceRepository
	loc      *time.Location
}

func NewSessions(
	sessions domain.SessionRepository,
	shifts domain.ShiftRepository,
	masters catalog.MasterRepository,
	services catalog.ServiceRepository,
	loc *time.Location,
) *Sessions {
	return &Sessions{
		sessions: sessions,
		shifts:   shifts,
		masters:  masters,
		services: services,
		loc:      loc,
	}
}

// Available lists open sessions of a master starting on the given calendar day.
func (uc *Sessions) Available(ctx context.Context, masterID uint, date string) ([]models.Session, error) {
	day, err := timezone.ParseDay(date, uc.loc)
	if err != nil {
		return nil, err
	}

	from, to := timezone.DayBounds(day, uc.loc)
	return uc.sessions.ListByMasterBetween(ctx, masterID, from, to, true)
}

// Schedule lists every session of the caller's master profile on the given day.
func (uc *Sessions) Schedule(ctx context.Context, userID uint, date string) ([]models.Session, error) {
	m, err := uc.masters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	day, err := timezone.ParseDay(date, uc.loc)
	if err != nil {
		return nil, err
	}

	from, to := timezone.DayBounds(day, uc.loc)
	return uc.sessions.ListByMasterBetween(ctx, m.ID, from, to, false)
}

// Create adds a session. Masters create for their own profile; admins for in.MasterID.
func (uc *Sessions) Create(ctx context.Context, actor role.Actor, in SessionInput) (*models.Session, error) {
	masterID, err := uc.targetMaster(ctx, actor, in.MasterID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.services.Get(ctx, in.ServiceID); err != nil {
		return nil, err
	}

	day, start, end, err := timezone.Window(in.Date, in.StartTime, in.EndTime, uc.loc)
	if err != nil {
		return nil, err
	}

	shifts, err := uc.shifts.ListByMasterBetween(ctx, masterID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	if !domain.FitsShifts(shifts, start, end) {
		return nil, domain.ErrOutsideShift
	}

	s := &models.Session{
		MasterID:    masterID,
		ServiceID:   in.ServiceID,
		Date:        day,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
	}
	if err := uc.sessions.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// SetAvailability toggles is_available on a session owned by the caller.
// A session holding an active appointment cannot be reopened.
func (uc *Sessions) SetAvailability(
	ctx context.Context,
	actor role.Actor,
	sessionID uint,
	available bool,
) (*models.Session, error) {

	s, err := uc.owned(ctx, actor, sessionID)
	if err != nil {
		return nil, err
	}

	if available && !s.IsAvailable {
		busy, err := uc.sessions.HasActiveAppointment(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		if busy {
			return nil, domain.ErrHasBooking
		}
	}

	return uc.sessions.Update(ctx, s.ID, map[string]any{"is_available": available})
}

func (uc *Sessions) Delete(ctx context.Context, actor role.Actor, sessionID uint) error {
	s, err := uc.owned(ctx, actor, sessionID)
	if err != nil {
		return err
	}

	busy, err := uc.sessions.HasActiveAppointment(ctx, s.ID)
	if err != nil {
		return err
	}
	if busy {
		return domain.ErrHasBooking
	}

	return uc.sessions.Delete(ctx, s.ID)
}

// owned loads a session and checks the actor may manage it.
func (uc *Sessions) owned(ctx context.Context, actor role.Actor, sessionID uint) (*models.Session, error) {
	s, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return s, nil
	}

	m, err := uc.masters.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if httperr.IsBusiness(err, "master_not_found") {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if s.MasterID != m.ID {
		return nil, ErrForbidden
	}
	return s, nil
}

func (uc *Sessions) targetMaster(ctx context.Context, actor role.Actor, requested uint) (uint, error) {
	if actor.IsAdmin() {
		m, err := uc.masters.Get(ctx, requested)
		if err != nil {
			return 0, err
		}
		return m.ID, nil
	}

	m, err := uc.masters.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return 0, err
	}
	return m.ID, nil
}
