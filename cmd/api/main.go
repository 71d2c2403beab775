package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/cache"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-booking/internal/db"
	"github.com/BruksfildServices01/salon-booking/internal/logger"
	"github.com/BruksfildServices01/salon-booking/internal/media"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/routes"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger.Setup(cfg)

	if !timezone.IsValid(cfg.Timezone) {
		log.Warn().Str("timezone", cfg.Timezone).Msg("invalid SALON_TIMEZONE, falling back to UTC")
	}
	loc := timezone.Location(cfg.Timezone)

	db := dbpkg.NewDB(cfg)
	if err := dbpkg.SeedAdmin(ctx, db, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin")
	}

	// ------------------------------
	// Catalog cache
	// ------------------------------
	var catalogCache cache.Catalog = cache.Nop{}
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(ctx, cfg.RedisURL, cfg.CatalogCacheTTL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, catalog cache disabled")
		} else {
			defer rc.Close()
			catalogCache = rc
		}
	}

	// ------------------------------
	// Avatar storage
	// ------------------------------
	var images media.Store = media.DisabledStore{}
	if cfg.AvatarStorageEnabled() {
		images = media.NewS3Store(cfg)
	}

	auditLogger := audit.New(db)
	dispatcher := audit.NewDispatcher(auditLogger)

	limiter := middleware.NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst)
	go limiter.Run(ctx.Done(), time.Minute, 10*time.Minute)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		middleware.SecurityHeaders(),
		middleware.CORSMiddleware(cfg.AllowOrigins),
	)

	routes.RegisterRoutes(r, routes.Deps{
		DB:          db,
		Tokens:      auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
		Location:    loc,
		Cache:       catalogCache,
		Images:      images,
		Audit:       dispatcher,
		AuditLogger: auditLogger,
		AuthLimiter: limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	dispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
