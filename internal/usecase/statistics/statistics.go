package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/role"
	"github.com/BruksfildServices01/salon-booking/internal/domain/stats"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

// RevenuePerAppointment is a flat placeholder until services carry real billing.
const RevenuePerAppointment = 1500

var ErrInvalidPeriod = httperr.ErrBusiness("invalid_period")

type ServiceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Dashboard struct {
	TotalAppointments     int64          `json:"total_appointments"`
	CompletedAppointments int64          `json:"completed_appointments"`
	TotalRevenue          int64          `json:"total_revenue"`
	TotalCustomers        int64          `json:"total_customers"`
	TotalMasters          int64          `json:"total_masters"`
	TopServices           []ServiceCount `json:"top_services"`
}

type AppointmentStats struct {
	TotalAppointments     int64            `json:"total_appointments"`
	CompletedAppointments int64            `json:"completed_appointments"`
	CancelledAppointments int64            `json:"cancelled_appointments"`
	UpcomingAppointments  int64            `json:"upcoming_appointments"`
	AppointmentsByService map[string]int64 `json:"appointments_by_service"`
	AppointmentsByMaster  map[string]int64 `json:"appointments_by_master"`
}

// AdminSummary and AdminRevenue are the fixed-zero admin panel figures.
type AdminSummary struct {
	TotalAppointments int64          `json:"total_appointments"`
	TotalRevenue      int64          `json:"total_revenue"`
	TotalCustomers    int64          `json:"total_customers"`
	TotalMasters      int64          `json:"total_masters"`
	TopServices       []ServiceCount `json:"top_services"`
}

type AdminRevenue struct {
	TodayRevenue   int64 `json:"today_revenue"`
	MonthlyRevenue int64 `json:"monthly_revenue"`
	YearlyRevenue  int64 `json:"yearly_revenue"`
}

type Statistics struct {
	repo stats.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewStatistics(repo stats.Repository, loc *time.Location) *Statistics {
	return &Statistics{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

func (uc *Statistics) Dashboard(ctx context.Context) (*Dashboard, error) {
	total, err := uc.repo.CountAppointments(ctx, "", time.Time{})
	if err != nil {
		return nil, err
	}
	completed, err := uc.repo.CountAppointments(ctx, string(appointment.StatusCompleted), time.Time{})
	if err != nil {
		return nil, err
	}
	customers, err := uc.repo.CountUsersByRole(ctx, string(role.Client))
	if err != nil {
		return nil, err
	}
	masters, err := uc.repo.CountMasters(ctx)
	if err != nil {
		return nil, err
	}
	services, err := uc.repo.FirstServices(ctx, 5)
	if err != nil {
		return nil, err
	}

	top := make([]ServiceCount, 0, len(services))
	for _, s := range services {
		top = append(top, ServiceCount{Name: s.Name, Count: 10})
	}

	return &Dashboard{
		TotalAppointments:     total,
		CompletedAppointments: completed,
		TotalRevenue:          completed * RevenuePerAppointment,
		TotalCustomers:        customers,
		TotalMasters:          masters,
		TopServices:           top,
	}, nil
}

// PeriodStart returns the start of the current day, week (Monday), month or year.
func PeriodStart(period string, now time.Time) (time.Time, error) {
	y, m, d := now.Date()
	loc := now.Location()

	switch period {
	case "day":
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	case "week":
		offset := (int(now.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset, 0, 0, 0, 0, loc), nil
	case "month":
		return time.Date(y, m, 1, 0, 0, 0, 0, loc), nil
	case "year":
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, ErrInvalidPeriod
}

// Revenue returns completed appointments created since the period start
// keyed as "<period>_revenue", alongside period, start_date and appointment_count.
func (uc *Statistics) Revenue(ctx context.Context, period string) (map[string]any, error) {
	if period == "" {
		period = "month"
	}

	start, err := PeriodStart(period, uc.now().In(uc.loc))
	if err != nil {
		return nil, err
	}

	count, err := uc.repo.CountAppointments(ctx, string(appointment.StatusCompleted), start)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		period + "_revenue": count * RevenuePerAppointment,
		"period":            period,
		"start_date":        start.Format(time.RFC3339),
		"appointment_count": count,
	}, nil
}

func (uc *Statistics) Appointments(ctx context.Context) (*AppointmentStats, error) {
	total, err := uc.repo.CountAppointments(ctx, "", time.Time{})
	if err != nil {
		return nil, err
	}
	completed, err := uc.repo.CountAppointments(ctx, string(appointment.StatusCompleted), time.Time{})
	if err != nil {
		return nil, err
	}
	cancelled, err := uc.repo.CountAppointments(ctx, string(appointment.StatusCancelled), time.Time{})
	if err != nil {
		return nil, err
	}
	perService, err := uc.repo.AppointmentsPerService(ctx)
	if err != nil {
		return nil, err
	}
	perMaster, err := uc.repo.AppointmentsPerMaster(ctx)
	if err != nil {
		return nil, err
	}

	return &AppointmentStats{
		TotalAppointments:     total,
		CompletedAppointments: completed,
		CancelledAppointments: cancelled,
		UpcomingAppointments:  total - completed - cancelled,
		AppointmentsByService: labelled("Service", perService),
		AppointmentsByMaster:  labelled("Master", perMaster),
	}, nil
}

func (uc *Statistics) AdminSummary() AdminSummary {
	return AdminSummary{TopServices: []ServiceCount{}}
}

func (uc *Statistics) AdminRevenue() AdminRevenue {
	return AdminRevenue{}
}

func labelled(prefix string, counts map[uint]int64) map[string]int64 {
	out := make(map[string]int64, len(counts))
	for id, n := range counts {
		out[fmt.Sprintf("%s %d", prefix, id)] = n
	}
	return out
}
