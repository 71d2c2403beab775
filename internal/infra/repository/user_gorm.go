package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type UserGormRepository struct {
	Store[models.User]
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{Store: NewStore[models.User](db, user.ErrNotFound)}
}

func (r *UserGormRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.conn(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err, user.ErrNotFound)
	}
	return &u, nil
}

func (r *UserGormRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *UserGormRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

var _ user.Repository = (*UserGormRepository)(nil)
