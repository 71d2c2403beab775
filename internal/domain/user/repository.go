package user

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

var (
	ErrNotFound      = httperr.ErrNotFound("user_not_found")
	ErrUsernameTaken = httperr.ErrBusiness("username_taken")
	ErrEmailTaken    = httperr.ErrBusiness("email_taken")
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
