package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/domain/stats"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

func (r *StatsGormRepository) CountAppointments(
	ctx context.Context,
	status string,
	since time.Time,
) (int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since.UTC())
	}

	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (r *StatsGormRepository) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", role).
		Count(&n).Error
	return n, err
}

func (r *StatsGormRepository) CountMasters(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Master{}).Count(&n).Error
	return n, err
}

func (r *StatsGormRepository) FirstServices(ctx context.Context, limit int) ([]models.Service, error) {
	var out []models.Service
	err := r.db.WithContext(ctx).Order("id ASC").Limit(limit).Find(&out).Error
	return out, err
}

type groupCount struct {
	GroupKey uint
	Count    int64
}

func (r *StatsGormRepository) AppointmentsPerService(ctx context.Context) (map[uint]int64, error) {
	return r.countBy(ctx, "service_id")
}

func (r *StatsGormRepository) AppointmentsPerMaster(ctx context.Context) (map[uint]int64, error) {
	return r.countBy(ctx, "master_id")
}

// countBy groups appointments by a trusted column name.
func (r *StatsGormRepository) countBy(ctx context.Context, column string) (map[uint]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(column + " AS group_key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uint]int64, len(rows))
	for _, row := range rows {
		out[row.GroupKey] = row.Count
	}
	return out, nil
}

var _ stats.Repository = (*StatsGormRepository)(nil)
