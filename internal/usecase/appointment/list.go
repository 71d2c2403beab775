package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

type ListAppointments struct {
	repo    domain.Repository
	masters catalog.MasterRepository
}

func NewListAppointments(
	repo domain.Repository,
	masters catalog.MasterRepository,
) *ListAppointments {
	return &ListAppointments{
		repo:    repo,
		masters: masters,
	}
}

func (uc *ListAppointments) ForClient(
	ctx context.Context,
	clientID uint,
	page pagination.Page,
) ([]dto.AppointmentListDTO, error) {

	apps, err := uc.repo.ListByClient(ctx, clientID, page)
	if err != nil {
		return nil, err
	}
	return dto.AppointmentList(apps), nil
}

// ForMasterUser lists appointments of the master profile owned by userID.
func (uc *ListAppointments) ForMasterUser(
	ctx context.Context,
	userID uint,
	page pagination.Page,
) ([]dto.AppointmentListDTO, error) {

	m, err := uc.masters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	apps, err := uc.repo.ListByMaster(ctx, m.ID, page)
	if err != nil {
		return nil, err
	}
	return dto.AppointmentList(apps), nil
}

func (uc *ListAppointments) All(
	ctx context.Context,
	page pagination.Page,
) ([]dto.AppointmentListDTO, error) {

	apps, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return dto.AppointmentList(apps), nil
}
