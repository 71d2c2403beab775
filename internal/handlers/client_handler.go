package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/salon-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	services     *catalog.Services
	masters      *catalog.Masters
	sessions     *schedule.Sessions
	book         *ucAppointment.BookAppointment
	changeStatus *ucAppointment.ChangeStatus
	list         *ucAppointment.ListAppointments
}

func NewClientHandler(
	services *catalog.Services,
	masters *catalog.Masters,
	sessions *schedule.Sessions,
	book *ucAppointment.BookAppointment,
	changeStatus *ucAppointment.ChangeStatus,
	list *ucAppointment.ListAppointments,
) *ClientHandler {
	return &ClientHandler{
		services:     services,
		masters:      masters,
		sessions:     sessions,
		book:         book,
		changeStatus: changeStatus,
		list:         list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ClientID  uint `json:"client_id" binding:"required"`
	SessionID uint `json:"session_id" binding:"required"`
	ServiceID uint `json:"service_id"`
	MasterID  uint `json:"master_id"`
}

// ======================================================
// CATALOG
// ======================================================

func (h *ClientHandler) ListServices(c *gin.Context) {
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

func (h *ClientHandler) ListMasters(c *gin.Context) {
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

func (h *ClientHandler) AvailableSessions(c *gin.Context) {
	masterID, err := queryID(c, "master_id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	items, err := h.sessions.Available(c.Request.Context(), masterID, c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (h *ClientHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), actor(c), ucAppointment.BookAppointmentInput{
		ClientID:  req.ClientID,
		SessionID: req.SessionID,
		ServiceID: req.ServiceID,
		MasterID:  req.MasterID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *ClientHandler) MyAppointments(c *gin.Context) {
	p, err := page(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	items, err := h.list.ForClient(c.Request.Context(), actor(c).UserID, p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *ClientHandler) Cancel(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	ap, err := h.changeStatus.Execute(c.Request.Context(), actor(c), id, domain.StatusCancelled)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}
