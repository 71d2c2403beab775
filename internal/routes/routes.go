package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/cache"
	"github.com/BruksfildServices01/salon-booking/internal/domain/role"
	"github.com/BruksfildServices01/salon-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/media"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/account"
	ucAppointment "github.com/BruksfildServices01/salon-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/review"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/schedule"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/statistics"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

// Deps carries the process-wide singletons built in main.
type Deps struct {
	DB          *gorm.DB
	Tokens      *auth.TokenManager
	Location    *time.Location
	Cache       cache.Catalog
	Images      media.Store
	Audit       audit.Sink
	AuditLogger *audit.Logger
	AuthLimiter *middleware.RateLimiter
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	validators.RegisterWithGin()

	// ======================================================
	// INFRA
	// ======================================================
	users := infraRepo.NewUserGormRepository(d.DB)
	services := infraRepo.NewServiceGormRepository(d.DB)
	masters := infraRepo.NewMasterGormRepository(d.DB)
	sessions := infraRepo.NewSessionGormRepository(d.DB)
	shifts := infraRepo.NewShiftGormRepository(d.DB)
	appointments := infraRepo.NewAppointmentGormRepository(d.DB)
	reviews := infraRepo.NewReviewGormRepository(d.DB)
	statsRepo := infraRepo.NewStatsGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := account.NewRegister(users, d.Audit)
	loginUC := account.NewLogin(users, d.Tokens)

	servicesUC := catalog.NewServices(services, d.Cache, d.Audit)
	mastersUC := catalog.NewMasters(masters, users, d.Cache, d.Audit)
	profileUC := catalog.NewProfile(masters, d.Cache, d.Images)

	sessionsUC := schedule.NewSessions(sessions, shifts, masters, services, d.Location)
	shiftsUC := schedule.NewShifts(shifts, masters, d.Location)

	bookUC := ucAppointment.NewBookAppointment(appointments, sessions, d.Audit)
	changeStatusUC := ucAppointment.NewChangeStatus(appointments, masters, d.Audit)
	listUC := ucAppointment.NewListAppointments(appointments, masters)

	reviewsUC := review.NewReviews(reviews, appointments, d.Audit)
	statsUC := statistics.NewStatistics(statsRepo, d.Location)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	clientHandler := handlers.NewClientHandler(servicesUC, mastersUC, sessionsUC, bookUC, changeStatusUC, listUC)
	masterHandler := handlers.NewMasterHandler(profileUC, sessionsUC, shiftsUC, changeStatusUC, listUC)
	adminHandler := handlers.NewAdminHandler(servicesUC, mastersUC, sessionsUC, listUC, statsUC)
	reviewHandler := handlers.NewReviewHandler(reviewsUC)
	statisticsHandler := handlers.NewStatisticsHandler(statsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogger, d.Location)

	authenticated := middleware.AuthMiddleware(d.Tokens, users)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ------------------------------
	// AUTH
	// ------------------------------
	authGroup := r.Group("/auth")
	{
		limited := authGroup.Group("/")
		if d.AuthLimiter != nil {
			limited.Use(d.AuthLimiter.Middleware())
		}
		limited.POST("/register", authHandler.Register)
		limited.POST("/login", authHandler.Login)

		authGroup.GET("/profile", authenticated, authHandler.Profile)
	}

	// ------------------------------
	// CLIENTS
	// ------------------------------
	clients := r.Group("/clients")
	{
		clients.GET("/services", clientHandler.ListServices)
		clients.GET("/masters", clientHandler.ListMasters)

		secured := clients.Group("/")
		secured.Use(authenticated)
		{
			secured.GET("/sessions/available", clientHandler.AvailableSessions)
			secured.POST("/appointments/book", middleware.RequireRole(role.Client), clientHandler.Book)
			secured.GET("/appointments/my", clientHandler.MyAppointments)
			secured.PATCH("/appointments/:id/cancel", clientHandler.Cancel)
			secured.POST("/reviews", reviewHandler.Create)
		}
	}

	// ------------------------------
	// MASTERS
	// ------------------------------
	masterGroup := r.Group("/masters")
	masterGroup.Use(authenticated, middleware.RequireRole(role.Master))
	{
		masterGroup.GET("/profile", masterHandler.GetProfile)
		masterGroup.PATCH("/profile", masterHandler.UpdateProfile)
		masterGroup.POST("/profile/avatar", masterHandler.UploadAvatar)

		masterGroup.GET("/schedule", masterHandler.Schedule)
		masterGroup.GET("/appointments", masterHandler.Appointments)
		masterGroup.PATCH("/appointments/:id/complete", masterHandler.Complete)
		masterGroup.PATCH("/appointments/:id/cancel", masterHandler.Cancel)

		masterGroup.POST("/sessions", masterHandler.CreateSession)
		masterGroup.PUT("/sessions/:id/availability", masterHandler.SetSessionAvailability)
		masterGroup.DELETE("/sessions/:id", masterHandler.DeleteSession)

		masterGroup.GET("/shifts", masterHandler.ListShifts)
		masterGroup.POST("/shifts", masterHandler.CreateShift)
		masterGroup.PATCH("/shifts/:id", masterHandler.UpdateShift)
		masterGroup.DELETE("/shifts/:id", masterHandler.DeleteShift)
	}

	// ------------------------------
	// ADMIN
	// ------------------------------
	admin := r.Group("/admin")
	admin.Use(authenticated, middleware.RequireRole(role.Admin))
	{
		admin.GET("/dashboard", adminHandler.Dashboard)

		admin.GET("/services", adminHandler.ListServices)
		admin.POST("/services", adminHandler.CreateService)
		admin.PUT("/services/:id", adminHandler.UpdateService)
		admin.DELETE("/services/:id", adminHandler.DeleteService)

		admin.GET("/masters", adminHandler.ListMasters)
		admin.POST("/masters", adminHandler.CreateMaster)
		admin.PUT("/masters/:id", adminHandler.UpdateMaster)
		admin.DELETE("/masters/:id", adminHandler.DeleteMaster)

		admin.POST("/sessions", adminHandler.CreateSession)
		admin.GET("/appointments", adminHandler.Appointments)

		admin.GET("/statistics", adminHandler.Statistics)
		admin.GET("/revenue", adminHandler.Revenue)
		admin.GET("/audit-logs", auditLogsHandler.List)
	}

	// ------------------------------
	// REVIEWS
	// ------------------------------
	reviewGroup := r.Group("/reviews")
	reviewGroup.Use(authenticated)
	{
		reviewGroup.POST("", reviewHandler.Create)
		reviewGroup.GET("/master/:master_id", reviewHandler.ByMaster)
		reviewGroup.GET("/client/:client_id", reviewHandler.ByClient)
		reviewGroup.GET("/:id", reviewHandler.Get)
		reviewGroup.PUT("/:id", reviewHandler.Update)
		reviewGroup.DELETE("/:id", reviewHandler.Delete)
	}

	// ------------------------------
	// STATISTICS
	// ------------------------------
	statsGroup := r.Group("/statistics")
	statsGroup.Use(authenticated, middleware.RequireRole(role.Admin))
	{
		statsGroup.GET("/dashboard", statisticsHandler.Dashboard)
		statsGroup.GET("/revenue", statisticsHandler.Revenue)
		statsGroup.GET("/appointments", statisticsHandler.Appointments)
	}
}
