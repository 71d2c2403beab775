package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/statistics"
)

type StatisticsHandler struct {
	stats *statistics.Statistics
}

func NewStatisticsHandler(stats *statistics.Statistics) *StatisticsHandler {
	return &StatisticsHandler{stats: stats}
}

func (h *StatisticsHandler) Dashboard(c *gin.Context) {
	d, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *StatisticsHandler) Revenue(c *gin.Context) {
	r, err := h.stats.Revenue(c.Request.Context(), c.Query("period"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *StatisticsHandler) Appointments(c *gin.Context) {
	a, err := h.stats.Appointments(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, a)
}
