package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/cache"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

const (
	servicesKey = "services:"
	mastersKey  = "masters:"
)

// ServiceInput is used for both create and partial update; nil fields are left alone.
type ServiceInput struct {
	Name        *string
	Description *string
	Duration    *int
	Price       *float64
}

func (in ServiceInput) fields() map[string]any {
	f := map[string]any{}
	if in.Name != nil {
		f["name"] = *in.Name
	}
	if in.Description != nil {
		f["description"] = *in.Description
	}
	if in.Duration != nil {
		f["duration"] = *in.Duration
	}
	if in.Price != nil {
		f["price"] = *in.Price
	}
	return f
}

type Services struct {
	repo  domain.ServiceRepository
	cache cache.Catalog
	audit audit.Sink
}

func NewServices(
	repo domain.ServiceRepository,
	cache cache.Catalog,
	audit audit.Sink,
) *Services {
	return &Services{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// List serves anonymous browsing, so pages are cached.
func (uc *Services) List(ctx context.Context, page pagination.Page) ([]models.Service, error) {
	key := pageKey(servicesKey, page)

	var out []models.Service
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

func (uc *Services) Get(ctx context.Context, id uint) (*models.Service, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *Services) Create(ctx context.Context, actorID uint, in ServiceInput) (*models.Service, error) {
	s := &models.Service{}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.Duration != nil {
		s.Duration = *in.Duration
	}
	if in.Price != nil {
		s.Price = *in.Price
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.changed(ctx, actorID, audit.ActionServiceCreated, s.ID)
	return s, nil
}

func (uc *Services) Update(ctx context.Context, actorID, id uint, in ServiceInput) (*models.Service, error) {
	s, err := uc.repo.Update(ctx, id, in.fields())
	if err != nil {
		return nil, err
	}

	uc.changed(ctx, actorID, audit.ActionServiceUpdated, s.ID)
	return s, nil
}

func (uc *Services) Delete(ctx context.Context, actorID, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.changed(ctx, actorID, audit.ActionServiceDeleted, id)
	return nil
}

func (uc *Services) changed(ctx context.Context, actorID uint, action string, id uint) {
	invalidate(ctx, uc.cache, servicesKey)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "service",
		EntityID: &id,
	})
}

func pageKey(prefix string, page pagination.Page) string {
	return fmt.Sprintf("%s%d:%d", prefix, page.Skip, page.Limit)
}

func invalidate(ctx context.Context, c cache.Catalog, prefix string) {
	if err := c.Invalidate(ctx, prefix); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("prefix", prefix).Msg("catalog cache invalidation failed")
	}
}
