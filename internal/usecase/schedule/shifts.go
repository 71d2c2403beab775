package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// ShiftInput fields are optional on update; create requires all three.
type ShiftInput struct {
	Date      *string
	StartTime *string
	EndTime   *string
}

type Shifts struct {
	shifts  domain.ShiftRepository
	masters catalog.MasterRepository
	loc     *time.Location
}

func NewShifts(
	shifts domain.ShiftRepository,
	masters catalog.MasterRepository,
	loc *time.Location,
) *Shifts {
	return &Shifts{
		shifts:  shifts,
		masters: masters,
		loc:     loc,
	}
}

func (uc *Shifts) List(ctx context.Context, userID uint, page pagination.Page) ([]models.Shift, error) {
	m, err := uc.masters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.shifts.ListByMaster(ctx, m.ID, page)
}

func (uc *Shifts) Create(ctx context.Context, userID uint, in ShiftInput) (*models.Shift, error) {
	m, err := uc.masters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Date == nil || in.StartTime == nil || in.EndTime == nil {
		return nil, timezone.ErrInvalidDate
	}

	day, start, end, err := timezone.Window(*in.Date, *in.StartTime, *in.EndTime, uc.loc)
	if err != nil {
		return nil, err
	}

	s := &models.Shift{
		MasterID:  m.ID,
		Date:      day,
		StartTime: start,
		EndTime:   end,
	}
	if err := uc.shifts.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Update applies the supplied date/start/end over the current values.
func (uc *Shifts) Update(ctx context.Context, userID, shiftID uint, in ShiftInput) (*models.Shift, error) {
	s, err := uc.owned(ctx, userID, shiftID)
	if err != nil {
		return nil, err
	}

	if in.Date == nil && in.StartTime == nil && in.EndTime == nil {
		return s, nil
	}

	date := s.Date.In(uc.loc).Format("2006-01-02")
	start := s.StartTime.In(uc.loc).Format("15:04")
	end := s.EndTime.In(uc.loc).Format("15:04")
	if in.Date != nil {
		date = *in.Date
	}
	if in.StartTime != nil {
		start = *in.StartTime
	}
	if in.EndTime != nil {
		end = *in.EndTime
	}

	day, from, to, err := timezone.Window(date, start, end, uc.loc)
	if err != nil {
		return nil, err
	}

	return uc.shifts.Update(ctx, s.ID, map[string]any{
		"date":       day,
		"start_time": from,
		"end_time":   to,
	})
}

func (uc *Shifts) Delete(ctx context.Context, userID, shiftID uint) error {
	s, err := uc.owned(ctx, userID, shiftID)
	if err != nil {
		return err
	}
	return uc.shifts.Delete(ctx, s.ID)
}

func (uc *Shifts) owned(ctx context.Context, userID, shiftID uint) (*models.Shift, error) {
	m, err := uc.masters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s, err := uc.shifts.Get(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if s.MasterID != m.ID {
		return nil, ErrForbidden
	}
	return s, nil
}
