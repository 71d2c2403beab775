package audit

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

type Page struct {
	Data  []models.AuditLog `json:"logs"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
}

// List returns audit rows newest first.
func (l *Logger) List(ctx context.Context, f Filter) (Page, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 200 {
		f.Limit = 50
	}

	q := l.db.WithContext(ctx).Model(&models.AuditLog{})
	q = applyFilter(q, f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return Page{}, err
	}

	var rows []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&rows).Error; err != nil {
		return Page{}, err
	}

	return Page{Data: rows, Page: f.Page, Limit: f.Limit, Total: total}, nil
}

func applyFilter(q *gorm.DB, f Filter) *gorm.DB {
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.UTC())
	}
	return q
}
