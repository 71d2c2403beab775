package db

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/domain/role"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// SeedAdmin creates the admin account from config when it does not exist yet.
// Admins cannot register through the API, so this is the only way one appears.
func SeedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.User
	err := db.WithContext(ctx).
		Where("username = ?", cfg.AdminUsername).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	email := cfg.AdminEmail
	if email == "" {
		email = cfg.AdminUsername + "@salon.local"
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		Email:        email,
		PasswordHash: hash,
		Role:         string(role.Admin),
		IsActive:     true,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}

	log.Info().Str("username", admin.Username).Msg("admin user seeded")
	return nil
}
