package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type AppointmentListDTO struct {
	ID        uint `json:"id"`
	ClientID  uint `json:"client_id"`
	SessionID uint `json:"session_id"`
	ServiceID uint `json:"service_id"`
	MasterID  uint `json:"master_id"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`

	ClientName  string `json:"client_name"`
	MasterName  string `json:"master_name"`
	ServiceName string `json:"service_name"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AppointmentList expects Session, Service, Master and Client to be preloaded.
func AppointmentList(apps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, AppointmentListDTO{
			ID:          ap.ID,
			ClientID:    ap.ClientID,
			SessionID:   ap.SessionID,
			ServiceID:   ap.ServiceID,
			MasterID:    ap.MasterID,
			StartTime:   ap.Session.StartTime,
			EndTime:     ap.Session.EndTime,
			Status:      ap.Status,
			ClientName:  ap.Client.Username,
			MasterName:  ap.Master.Name,
			ServiceName: ap.Service.Name,
			CancelledAt: ap.CancelledAt,
			CompletedAt: ap.CompletedAt,
			CreatedAt:   ap.CreatedAt,
		})
	}
	return out
}
