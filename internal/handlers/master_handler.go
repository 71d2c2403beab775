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

type MasterHandler struct {
	profile      *catalog.Profile
	sessions     *schedule.Sessions
	shifts       *schedule.Shifts
	changeStatus *ucAppointment.ChangeStatus
	list         *ucAppointment.ListAppointments
}

func NewMasterHandler(
	profile *catalog.Profile,
	sessions *schedule.Sessions,
	shifts *schedule.Shifts,
	changeStatus *ucAppointment.ChangeStatus,
	list *ucAppointment.ListAppointments,
) *MasterHandler {
	return &MasterHandler{
		profile:      profile,
		sessions:     sessions,
		shifts:       shifts,
		changeStatus: changeStatus,
		list:         list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateProfileRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=100"`
	Specialization *string `json:"specialization" binding:"omitempty,max=100"`
	Bio            *string `json:"bio" binding:"omitempty,max=2000"`
}

type SessionAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

type CreateSessionRequest struct {
	MasterID  uint   `json:"master_id"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required,ymd"`
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
}

func (r CreateSessionRequest) input() schedule.SessionInput {
	return schedule.SessionInput{
		MasterID:  r.MasterID,
		ServiceID: r.ServiceID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

type CreateShiftRequest struct {
	Date      string `json:"date" binding:"required,ymd"`
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
}

type UpdateShiftRequest struct {
	Date      *string `json:"date" binding:"omitempty,ymd"`
	StartTime *string `json:"start_time" binding:"omitempty,hhmm"`
	EndTime   *string `json:"end_time" binding:"omitempty,hhmm"`
}

// ======================================================
// PROFILE
// ======================================================

func (h *MasterHandler) GetProfile(c *gin.Context) {
	m, err := h.profile.Get(c.Request.Context(), actor(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, m)
}

func (h *MasterHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.profile.Update(c.Request.Context(), actor(c).UserID, catalog.MasterInput{
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

func (h *MasterHandler) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "multipart field \"file\" is required")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	m, err := h.profile.UploadAvatar(c.Request.Context(), actor(c).UserID, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, m)
}

// ======================================================
// SCHEDULE
// ======================================================

func (h *MasterHandler) Schedule(c *gin.Context) {
	items, err := h.sessions.Schedule(c.Request.Context(), actor(c).UserID, c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *MasterHandler) Appointments(c *gin.Context) {
	p, err := page(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	items, err := h.list.ForMasterUser(c.Request.Context(), actor(c).UserID, p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

// ======================================================
// SESSIONS
// ======================================================

func (h *MasterHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.sessions.Create(c.Request.Context(), actor(c), req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *MasterHandler) SetSessionAvailability(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req SessionAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.sessions.SetAvailability(c.Request.Context(), actor(c), id, *req.IsAvailable)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *MasterHandler) DeleteSession(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.sessions.Delete(c.Request.Context(), actor(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Session deleted successfully")
}

// ======================================================
// SHIFTS
// ======================================================

func (h *MasterHandler) ListShifts(c *gin.Context) {
	p, err := page(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	items, err := h.shifts.List(c.Request.Context(), actor(c).UserID, p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *MasterHandler) CreateShift(c *gin.Context) {
	var req CreateShiftRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.shifts.Create(c.Request.Context(), actor(c).UserID, schedule.ShiftInput{
		Date:      &req.Date,
		StartTime: &req.StartTime,
		EndTime:   &req.EndTime,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *MasterHandler) UpdateShift(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateShiftRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.shifts.Update(c.Request.Context(), actor(c).UserID, id, schedule.ShiftInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *MasterHandler) DeleteShift(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.shifts.Delete(c.Request.Context(), actor(c).UserID, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Shift deleted successfully")
}

// ======================================================
// APPOINTMENT STATUS
// ======================================================

func (h *MasterHandler) Complete(c *gin.Context) {
	h.transition(c, domain.StatusCompleted)
}

func (h *MasterHandler) Cancel(c *gin.Context) {
	h.transition(c, domain.StatusCancelled)
}

func (h *MasterHandler) transition(c *gin.Context, to domain.Status) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	ap, err := h.changeStatus.Execute(c.Request.Context(), actor(c), id, to)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}
