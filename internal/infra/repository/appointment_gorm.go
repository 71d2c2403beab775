package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

type AppointmentGormRepository struct {
	Store[models.Appointment]
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{Store: NewStore[models.Appointment](db, domain.ErrNotFound)}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *AppointmentGormRepository) Book(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		// Test-and-set: only one writer can move the session from available to taken.
		res := tx.Model(&models.Session{}).
			Where("id = ? AND is_available = ?", ap.SessionID, true).
			Update("is_available", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrSessionUnavailable
		}

		if err := tx.Create(ap).Error; err != nil {
			if errors.Is(translate(err, nil), ErrDuplicate) {
				return domain.ErrSessionUnavailable
			}
			return translate(err, domain.ErrNotFound)
		}

		return nil
	})
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func withDetails(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Session").
		Preload("Service").
		Preload("Master").
		Preload("Client")
}

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	page pagination.Page,
) ([]models.Appointment, error) {
	return r.find(ctx, page, withDetails)
}

func (r *AppointmentGormRepository) ListByClient(
	ctx context.Context,
	clientID uint,
	page pagination.Page,
) ([]models.Appointment, error) {
	return r.find(ctx, page, func(q *gorm.DB) *gorm.DB {
		return withDetails(q).Where("client_id = ?", clientID)
	})
}

func (r *AppointmentGormRepository) ListByMaster(
	ctx context.Context,
	masterID uint,
	page pagination.Page,
) ([]models.Appointment, error) {
	return r.find(ctx, page, func(q *gorm.DB) *gorm.DB {
		return withDetails(q).Where("master_id = ?", masterID)
	})
}

// --------------------------------------------------
// Appointment (Cancel / Complete)
// --------------------------------------------------

func (r *AppointmentGormRepository) SaveTransition(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&current, ap.ID).Error; err != nil {
			return translate(err, domain.ErrNotFound)
		}

		// Another request may have moved it first.
		if err := domain.CanTransition(domain.Status(current.Status), domain.Status(ap.Status)); err != nil {
			return err
		}

		res := tx.Model(&models.Appointment{}).
			Where("id = ? AND status = ?", ap.ID, current.Status).
			Updates(map[string]any{
				"status":       ap.Status,
				"cancelled_at": ap.CancelledAt,
				"completed_at": ap.CompletedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvalidState
		}

		if domain.Status(ap.Status) == domain.StatusCancelled {
			if err := tx.Model(&models.Session{}).
				Where("id = ?", ap.SessionID).
				Update("is_available", true).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
