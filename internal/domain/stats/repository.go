package stats

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// Repository answers the aggregate counts behind the admin statistics.
type Repository interface {
	// CountAppointments counts appointments with the given status ("" for any)
	// created at or after since (zero time for no bound).
	CountAppointments(ctx context.Context, status string, since time.Time) (int64, error)
	CountUsersByRole(ctx context.Context, role string) (int64, error)
	CountMasters(ctx context.Context) (int64, error)
	FirstServices(ctx context.Context, limit int) ([]models.Service, error)
	AppointmentsPerService(ctx context.Context) (map[uint]int64, error)
	AppointmentsPerMaster(ctx context.Context) (map[uint]int64, error)
}
