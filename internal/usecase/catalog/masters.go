package catalog

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/cache"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/domain/role"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

var (
	ErrUserNotMaster = httperr.ErrBusiness("user_not_master")
	ErrProfileExists = httperr.ErrBusiness("master_profile_exists")
)

type MasterInput struct {
	UserID         uint
	Name           *string
	Specialization *string
	Bio            *string
}

func (in MasterInput) fields() map[string]any {
	f := map[string]any{}
	if in.Name != nil {
		f["name"] = *in.Name
	}
	if in.Specialization != nil {
		f["specialization"] = *in.Specialization
	}
	if in.Bio != nil {
		f["bio"] = *in.Bio
	}
	return f
}

type Masters struct {
	repo  domain.MasterRepository
	users user.Repository
	cache cache.Catalog
	audit audit.Sink
}

func NewMasters(
	repo domain.MasterRepository,
	users user.Repository,
	cache cache.Catalog,
	audit audit.Sink,
) *Masters {
	return &Masters{
		repo:  repo,
		users: users,
		cache: cache,
		audit: audit,
	}
}

func (uc *Masters) List(ctx context.Context, page pagination.Page) ([]models.Master, error) {
	key := pageKey(mastersKey, page)

	var out []models.Master
	if ok, err := uc.cache.GetJSON(ctx, key, &out); err == nil && ok {
		return out, nil
	} else if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
	}

	out, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetJSON(ctx, key, out); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
	return out, nil
}

func (uc *Masters) Get(ctx context.Context, id uint) (*models.Master, error) {
	return uc.repo.Get(ctx, id)
}

// Create attaches a master profile to an existing user with role master.
func (uc *Masters) Create(ctx context.Context, actorID uint, in MasterInput) (*models.Master, error) {
	u, err := uc.users.Get(ctx, in.UserID)
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return nil, ErrUserNotMaster
		}
		return nil, err
	}
	if role.Role(u.Role) != role.Master {
		return nil, ErrUserNotMaster
	}

	if _, err := uc.repo.GetByUserID(ctx, u.ID); err == nil {
		return nil, ErrProfileExists
	} else if !httperr.IsBusiness(err, "master_not_found") {
		return nil, err
	}

	m := &models.Master{UserID: u.ID, Name: u.Username}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Specialization != nil {
		m.Specialization = *in.Specialization
	}
	if in.Bio != nil {
		m.Bio = *in.Bio
	}

	if err := uc.repo.Create(ctx, m); err != nil {
		if httperr.IsBusiness(err, "duplicate_record") {
			return nil, ErrProfileExists
		}
		return nil, err
	}

	uc.changed(ctx, actorID, audit.ActionMasterCreated, m.ID)
	return m, nil
}

func (uc *Masters) Update(ctx context.Context, actorID, id uint, in MasterInput) (*models.Master, error) {
	m, err := uc.repo.Update(ctx, id, in.fields())
	if err != nil {
		return nil, err
	}

	uc.changed(ctx, actorID, audit.ActionMasterUpdated, m.ID)
	return m, nil
}

func (uc *Masters) Delete(ctx context.Context, actorID, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.changed(ctx, actorID, audit.ActionMasterDeleted, id)
	return nil
}

func (uc *Masters) changed(ctx context.Context, actorID uint, action string, id uint) {
	invalidate(ctx, uc.cache, mastersKey)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "master",
		EntityID: &id,
	})
}
