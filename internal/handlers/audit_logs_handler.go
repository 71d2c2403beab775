package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	// --------------------------------------------------
	// Optional day range, inclusive on both ends
	// --------------------------------------------------

	if v := c.Query("from"); v != "" {
		day, err := timezone.ParseDay(v, h.loc)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		from, _ := timezone.DayBounds(day, h.loc)
		f.From = &from
	}

	if v := c.Query("to"); v != "" {
		day, err := timezone.ParseDay(v, h.loc)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		_, to := timezone.DayBounds(day, h.loc)
		f.To = &to
	}

	page, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if page.Data == nil {
		page.Data = []models.AuditLog{}
	}

	httpresp.OK(c, page)
}
