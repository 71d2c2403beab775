package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/domain/role"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// ChangeStatus moves an appointment to completed or cancelled on behalf of
// its client, its master or an admin. Clients may only cancel.
type ChangeStatus struct {
	repo    domain.Repository
	masters catalog.MasterRepository
	audit   audit.Sink
	now     func() time.Time
}

func NewChangeStatus(
	repo domain.Repository,
	masters catalog.MasterRepository,
	audit audit.Sink,
) *ChangeStatus {
	return &ChangeStatus{
		repo:    repo,
		masters: masters,
		audit:   audit,
		now:     time.Now,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	actor role.Actor,
	appointmentID uint,
	to domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.Get(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorize(ctx, actor, ap, to); err != nil {
		return nil, err
	}

	if err := domain.Apply(ap, to, uc.now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveTransition(ctx, ap); err != nil {
		return nil, err
	}

	action := audit.ActionAppointmentCancelled
	if to == domain.StatusCompleted {
		action = audit.ActionAppointmentCompleted
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *ChangeStatus) authorize(
	ctx context.Context,
	actor role.Actor,
	ap *models.Appointment,
	to domain.Status,
) error {

	switch actor.Role {
	case role.Admin:
		return nil

	case role.Client:
		if ap.ClientID != actor.UserID || to != domain.StatusCancelled {
			return ErrForbidden
		}
		return nil

	case role.Master:
		m, err := uc.masters.GetByUserID(ctx, actor.UserID)
		if err != nil {
			if httperr.IsBusiness(err, "master_not_found") {
				return ErrForbidden
			}
			return err
		}
		if ap.MasterID != m.ID {
			return ErrForbidden
		}
		return nil
	}

	return ErrForbidden
}
