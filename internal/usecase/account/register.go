package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/domain/role"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

var ErrInvalidRole = httperr.ErrBusiness("invalid_role")

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

type Register struct {
	users user.Repository
	audit audit.Sink
}

func NewRegister(users user.Repository, audit audit.Sink) *Register {
	return &Register{users: users, audit: audit}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	r := role.Client
	if in.Role != "" {
		parsed, ok := role.Parse(in.Role)
		if !ok || !parsed.Registrable() {
			return nil, ErrInvalidRole
		}
		r = parsed
	}

	username := strings.TrimSpace(in.Username)
	email := validators.NormalizeEmail(in.Email)

	taken, err := uc.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, user.ErrUsernameTaken
	}

	taken, err = uc.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, user.ErrEmailTaken
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         string(r),
		IsActive:     true,
	}

	if err := uc.users.Create(ctx, u); err != nil {
		// Lost a race with a concurrent registration.
		if httperr.IsBusiness(err, "duplicate_record") {
			return nil, user.ErrUsernameTaken
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"role": u.Role},
	})

	return u, nil
}
