package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

var (
	ErrSessionNotFound = httperr.ErrNotFound("session_not_found")
	ErrShiftNotFound   = httperr.ErrNotFound("shift_not_found")
	ErrOutsideShift    = httperr.ErrBusiness("outside_shift")
	ErrHasBooking      = httperr.ErrBusiness("session_has_booking")
)

type SessionRepository interface {
	Create(ctx context.Context, s *models.Session) error
	Get(ctx context.Context, id uint) (*models.Session, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*models.Session, error)
	Delete(ctx context.Context, id uint) error

	// ListByMasterBetween returns sessions starting in [from, to).
	ListByMasterBetween(
		ctx context.Context,
		masterID uint,
		from time.Time,
		to time.Time,
		onlyAvailable bool,
	) ([]models.Session, error)

	HasActiveAppointment(ctx context.Context, sessionID uint) (bool, error)
}

type ShiftRepository interface {
	Create(ctx context.Context, s *models.Shift) error
	Get(ctx context.Context, id uint) (*models.Shift, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*models.Shift, error)
	Delete(ctx context.Context, id uint) error

	ListByMaster(ctx context.Context, masterID uint, page pagination.Page) ([]models.Shift, error)

	ListByMasterBetween(
		ctx context.Context,
		masterID uint,
		from time.Time,
		to time.Time,
	) ([]models.Shift, error)
}
