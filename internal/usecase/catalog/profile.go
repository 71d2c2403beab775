package catalog

import (
	"context"
	"io"

	"github.com/BruksfildServices01/salon-booking/internal/cache"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/media"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// Profile is the master's own view of their Master record.
type Profile struct {
	repo   domain.MasterRepository
	cache  cache.Catalog
	images media.Store
}

func NewProfile(
	repo domain.MasterRepository,
	cache cache.Catalog,
	images media.Store,
) *Profile {
	return &Profile{
		repo:   repo,
		cache:  cache,
		images: images,
	}
}

func (uc *Profile) Get(ctx context.Context, userID uint) (*models.Master, error) {
	return uc.repo.GetByUserID(ctx, userID)
}

// Update changes name, specialization and bio. UserID in the input is ignored.
func (uc *Profile) Update(ctx context.Context, userID uint, in MasterInput) (*models.Master, error) {
	m, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.Update(ctx, m.ID, in.fields())
	if err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache, mastersKey)
	return updated, nil
}

func (uc *Profile) UploadAvatar(ctx context.Context, userID uint, r io.Reader) (*models.Master, error) {
	m, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, ok := uc.images.(media.DisabledStore); ok {
		return nil, media.ErrStorageDisabled
	}

	img, err := media.EncodeAvatar(r)
	if err != nil {
		return nil, err
	}

	url, err := uc.images.Put(ctx, media.AvatarKey(m.ID), "image/webp", img)
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.Update(ctx, m.ID, map[string]any{"avatar_url": url})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache, mastersKey)
	return updated, nil
}
