package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/salon-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/schedule"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/statistics"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	services *catalog.Services
	masters  *catalog.Masters
	sessions *schedule.Sessions
	list     *ucAppointment.ListAppointments
	stats    *statistics.Statistics
}

func NewAdminHandler(
	services *catalog.Services,
	masters *catalog.Masters,
	sessions *schedule.Sessions,
	list *ucAppointment.ListAppointments,
	stats *statistics.Statistics,
) *AdminHandler {
	return &AdminHandler{
		services: services,
		masters:  masters,
		sessions: sessions,
		list:     list,
		stats:    stats,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description string  `json:"description" binding:"max=2000"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Duration    *int     `json:"duration" binding:"omitempty,gt=0"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
}

type CreateMasterRequest struct {
	UserID         uint   `json:"user_id" binding:"required"`
	Name           string `json:"name" binding:"required,min=1,max=100"`
	Specialization string `json:"specialization" binding:"max=100"`
	Bio            string `json:"bio" binding:"max=2000"`
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *AdminHandler) Dashboard(c *gin.Context) {
	httpresp.Message(c, "Welcome to admin dashboard")
}

// ======================================================
// SERVICES
// ======================================================

func (h *AdminHandler) ListServices(c *gin.Context) {
	p, err := page(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	items, err := h.services.List(c.Request.Context(), p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *AdminHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.services.Create(c.Request.Context(), actor(c).UserID, catalog.ServiceInput{
		Name:        &req.Name,
		Description: &req.Description,
		Duration:    &req.Duration,
		Price:       &req.Price,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *AdminHandler) UpdateService(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.services.Update(c.Request.Context(), actor(c).UserID, id, catalog.ServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *AdminHandler) DeleteService(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.services.Delete(c.Request.Context(), actor(c).UserID, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Service deleted successfully")
}

// ======================================================
// MASTERS
// ======================================================

func (h *AdminHandler) ListMasters(c *gin.Context) {
	p, err := page(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	items, err := h.masters.List(c.Request.Context(), p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *AdminHandler) CreateMaster(c *gin.Context) {
	var req CreateMasterRequest
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.masters.Create(c.Request.Context(), actor(c).UserID, catalog.MasterInput{
		UserID:         req.UserID,
		Name:           &req.Name,
		Specialization: &req.Specialization,
		Bio:            &req.Bio,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, m)
}

func (h *AdminHandler) UpdateMaster(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.masters.Update(c.Request.Context(), actor(c).UserID, id, catalog.MasterInput{
		Name:           req.Name,
		Specialization: req.Specialization,
		Bio:            req.Bio,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, m)
}

func (h *AdminHandler) DeleteMaster(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.masters.Delete(c.Request.Context(), actor(c).UserID, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Master deleted successfully")
}

// ======================================================
// SESSIONS / APPOINTMENTS
// ======================================================

func (h *AdminHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.MasterID == 0 {
		httperr.BadRequest(c, "invalid_request", "master_id is required")
		return
	}

	s, err := h.sessions.Create(c.Request.Context(), actor(c), req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *AdminHandler) Appointments(c *gin.Context) {
	p, err := page(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	items, err := h.list.All(c.Request.Context(), p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

// ======================================================
// PLACEHOLDER FIGURES
// ======================================================

func (h *AdminHandler) Statistics(c *gin.Context) {
	httpresp.OK(c, h.stats.AdminSummary())
}

func (h *AdminHandler) Revenue(c *gin.Context) {
	httpresp.OK(c, h.stats.AdminRevenue())
}
