package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// --------------------------------------------------
// Service
// --------------------------------------------------

type ServiceGormRepository struct {
	Store[models.Service]
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{Store: NewStore[models.Service](db, catalog.ErrServiceNotFound)}
}

// --------------------------------------------------
// Master
// --------------------------------------------------

type MasterGormRepository struct {
	Store[models.Master]
}

func NewMasterGormRepository(db *gorm.DB) *MasterGormRepository {
	return &MasterGormRepository{Store: NewStore[models.Master](db, catalog.ErrMasterNotFound)}
}

func (r *MasterGormRepository) GetByUserID(ctx context.Context, userID uint) (*models.Master, error) {
	var m models.Master
	if err := r.conn(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, translate(err, catalog.ErrMasterNotFound)
	}
	return &m, nil
}

var (
	_ catalog.ServiceRepository = (*ServiceGormRepository)(nil)
	_ catalog.MasterRepository  = (*MasterGormRepository)(nil)
)
