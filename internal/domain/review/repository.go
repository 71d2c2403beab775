package review

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

var (
	ErrNotFound       = httperr.ErrNotFound("review_not_found")
	ErrExists         = httperr.ErrBusiness("review_exists")
	ErrMasterMismatch = httperr.ErrBusiness("review_master_mismatch")
	ErrCancelled      = httperr.ErrBusiness("appointment_cancelled")
	ErrInvalidRating  = httperr.ErrBusiness("invalid_rating")
)

const (
	MinRating = 1
	MaxRating = 5
)

func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

type Repository interface {
	Create(ctx context.Context, r *models.Review) error
	Get(ctx context.Context, id uint) (*models.Review, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*models.Review, error)
	Delete(ctx context.Context, id uint) error

	ListByMaster(ctx context.Context, masterID uint, page pagination.Page) ([]models.Review, error)
	ListByClient(ctx context.Context, clientID uint, page pagination.Page) ([]models.Review, error)
	ExistsForAppointment(ctx context.Context, appointmentID uint) (bool, error)
}
