package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/domain/review"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

type ReviewGormRepository struct {
	Store[models.Review]
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{Store: NewStore[models.Review](db, review.ErrNotFound)}
}

// Create maps the unique appointment_id index to ErrExists for concurrent writers.
func (r *ReviewGormRepository) Create(ctx context.Context, rv *models.Review) error {
	if err := r.Store.Create(ctx, rv); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return review.ErrExists
		}
		return err
	}
	return nil
}

func (r *ReviewGormRepository) ListByMaster(
	ctx context.Context,
	masterID uint,
	page pagination.Page,
) ([]models.Review, error) {
	return r.find(ctx, page, func(q *gorm.DB) *gorm.DB {
		return q.Where("master_id = ?", masterID)
	})
}

func (r *ReviewGormRepository) ListByClient(
	ctx context.Context,
	clientID uint,
	page pagination.Page,
) ([]models.Review, error) {
	return r.find(ctx, page, func(q *gorm.DB) *gorm.DB {
		return q.Where("client_id = ?", clientID)
	})
}

func (r *ReviewGormRepository) ExistsForAppointment(ctx context.Context, appointmentID uint) (bool, error) {
	return r.exists(ctx, "appointment_id = ?", appointmentID)
}

var _ review.Repository = (*ReviewGormRepository)(nil)
