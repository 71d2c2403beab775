package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

// --------------------------------------------------
// Session
// --------------------------------------------------

type SessionGormRepository struct {
	Store[models.Session]
}

func NewSessionGormRepository(db *gorm.DB) *SessionGormRepository {
	return &SessionGormRepository{Store: NewStore[models.Session](db, schedule.ErrSessionNotFound)}
}

func (r *SessionGormRepository) ListByMasterBetween(
	ctx context.Context,
	masterID uint,
	from time.Time,
	to time.Time,
	onlyAvailable bool,
) ([]models.Session, error) {

	q := r.conn(ctx).
		Where(
			"master_id = ? AND start_time >= ? AND start_time < ?",
			masterID, from.UTC(), to.UTC(),
		)
	if onlyAvailable {
		q = q.Where("is_available = ?", true)
	}

	var sessions []models.Session
	if err := q.Order("start_time ASC, id ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionGormRepository) HasActiveAppointment(ctx context.Context, sessionID uint) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&models.Appointment{}).
		Where("session_id = ? AND status <> ?", sessionID, string(appointment.StatusCancelled)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Shift
// --------------------------------------------------

type ShiftGormRepository struct {
	Store[models.Shift]
}

func NewShiftGormRepository(db *gorm.DB) *ShiftGormRepository {
	return &ShiftGormRepository{Store: NewStore[models.Shift](db, schedule.ErrShiftNotFound)}
}

func (r *ShiftGormRepository) ListByMaster(
	ctx context.Context,
	masterID uint,
	page pagination.Page,
) ([]models.Shift, error) {
	return r.find(ctx, page, func(q *gorm.DB) *gorm.DB {
		return q.Where("master_id = ?", masterID)
	})
}

func (r *ShiftGormRepository) ListByMasterBetween(
	ctx context.Context,
	masterID uint,
	from time.Time,
	to time.Time,
) ([]models.Shift, error) {

	var shifts []models.Shift
	err := r.conn(ctx).
		Where(
			"master_id = ? AND start_time >= ? AND start_time < ?",
			masterID, from.UTC(), to.UTC(),
		).
		Order("start_time ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

var (
	_ schedule.SessionRepository = (*SessionGormRepository)(nil)
	_ schedule.ShiftRepository   = (*ShiftGormRepository)(nil)
)
