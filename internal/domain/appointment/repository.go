package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

var (
	ErrSessionUnavailable = httperr.ErrBusiness("session_unavailable")
	ErrNotFound           = httperr.ErrNotFound("appointment_not_found")
)

type Repository interface {
	// Book flips the session to unavailable and creates ap in one transaction.
	// It returns ErrSessionUnavailable when the session was already taken.
	Book(ctx context.Context, ap *models.Appointment) error

	Get(ctx context.Context, id uint) (*models.Appointment, error)

	List(ctx context.Context, page pagination.Page) ([]models.Appointment, error)

	ListByClient(
		ctx context.Context,
		clientID uint,
		page pagination.Page,
	) ([]models.Appointment, error)

	ListByMaster(
		ctx context.Context,
		masterID uint,
		page pagination.Page,
	) ([]models.Appointment, error)

	// SaveTransition persists a status change made by Cancel or Complete.
	// Cancelling releases the session in the same transaction.
	SaveTransition(ctx context.Context, ap *models.Appointment) error
}
