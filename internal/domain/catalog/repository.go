package catalog

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

var (
	ErrServiceNotFound = httperr.ErrNotFound("service_not_found")
	ErrMasterNotFound  = httperr.ErrNotFound("master_not_found")
)

type ServiceRepository interface {
	Create(ctx context.Context, s *models.Service) error
	Get(ctx context.Context, id uint) (*models.Service, error)
	List(ctx context.Context, page pagination.Page) ([]models.Service, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*models.Service, error)
	Delete(ctx context.Context, id uint) error
}

type MasterRepository interface {
	Create(ctx context.Context, m *models.Master) error
	Get(ctx context.Context, id uint) (*models.Master, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Master, error)
	List(ctx context.Context, page pagination.Page) ([]models.Master, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*models.Master, error)
	Delete(ctx context.Context, id uint) error
}
