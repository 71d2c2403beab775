package review

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/review"
	"github.com/BruksfildServices01/salon-booking/internal/domain/role"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

var ErrForbidden = httperr.ErrForbidden("forbidden")

type CreateInput struct {
	ClientID      uint
	MasterID      uint
	AppointmentID uint
	Rating        int
	Comment       string
}

type UpdateInput struct {
	Rating  *int
	Comment *string
}

type Reviews struct {
	repo         domain.Repository
	appointments appointment.Repository
	audit        audit.Sink
}

func NewReviews(
	repo domain.Repository,
	appointments appointment.Repository,
	audit audit.Sink,
) *Reviews {
	return &Reviews{
		repo:         repo,
		appointments: appointments,
		audit:        audit,
	}
}

// ======================================================
// CREATE
// ======================================================

func (uc *Reviews) Create(ctx context.Context, actor role.Actor, in CreateInput) (*models.Review, error) {
	if actor.UserID != in.ClientID {
		return nil, ErrForbidden
	}
	if !domain.ValidRating(in.Rating) {
		return nil, domain.ErrInvalidRating
	}

	// A missing appointment answers like a foreign one.
	ap, err := uc.appointments.Get(ctx, in.AppointmentID)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if ap.ClientID != in.ClientID {
		return nil, ErrForbidden
	}
	if in.MasterID != 0 && ap.MasterID != in.MasterID {
		return nil, domain.ErrMasterMismatch
	}
	if appointment.Status(ap.Status) == appointment.StatusCancelled {
		return nil, domain.ErrCancelled
	}

	exists, err := uc.repo.ExistsForAppointment(ctx, ap.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrExists
	}

	r := &models.Review{
		ClientID:      in.ClientID,
		MasterID:      ap.MasterID,
		AppointmentID: ap.ID,
		Rating:        in.Rating,
		Comment:       in.Comment,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionReviewCreated,
		Entity:   "review",
		EntityID: &r.ID,
		Metadata: map[string]any{"appointment_id": ap.ID, "rating": r.Rating},
	})

	return r, nil
}

// ======================================================
// READ / UPDATE / DELETE
// ======================================================

func (uc *Reviews) Get(ctx context.Context, actor role.Actor, id uint) (*models.Review, error) {
	r, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.OwnerOrAdmin(r.ClientID) {
		return nil, ErrForbidden
	}
	return r, nil
}

// Update is reserved to the author, admins included.
func (uc *Reviews) Update(ctx context.Context, actor role.Actor, id uint, in UpdateInput) (*models.Review, error) {
	r, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.ClientID != actor.UserID {
		return nil, ErrForbidden
	}

	fields := map[string]any{}
	if in.Rating != nil {
		if !domain.ValidRating(*in.Rating) {
			return nil, domain.ErrInvalidRating
		}
		fields["rating"] = *in.Rating
	}
	if in.Comment != nil {
		fields["comment"] = *in.Comment
	}

	return uc.repo.Update(ctx, id, fields)
}

func (uc *Reviews) Delete(ctx context.Context, actor role.Actor, id uint) error {
	r, err := uc.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.OwnerOrAdmin(r.ClientID) {
		return ErrForbidden
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionReviewDeleted,
		Entity:   "review",
		EntityID: &id,
	})
	return nil
}

// ======================================================
// LISTING
// ======================================================

func (uc *Reviews) ByMaster(ctx context.Context, masterID uint, page pagination.Page) ([]models.Review, error) {
	return uc.repo.ListByMaster(ctx, masterID, page)
}

func (uc *Reviews) ByClient(
	ctx context.Context,
	actor role.Actor,
	clientID uint,
	page pagination.Page,
) ([]models.Review, error) {

	if !actor.OwnerOrAdmin(clientID) {
		return nil, ErrForbidden
	}
	return uc.repo.ListByClient(ctx, clientID, page)
}
