package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/review"
)

type ReviewHandler struct {
	reviews *review.Reviews
}

func NewReviewHandler(reviews *review.Reviews) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	ClientID      uint   `json:"client_id" binding:"required"`
	MasterID      uint   `json:"master_id" binding:"required"`
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment" binding:"max=2000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
}

// --------- Handlers ---------

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.reviews.Create(c.Request.Context(), actor(c), review.CreateInput{
		ClientID:      req.ClientID,
		MasterID:      req.MasterID,
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, r)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	r, err := h.reviews.Get(c.Request.Context(), actor(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.reviews.Update(c.Request.Context(), actor(c), id, review.UpdateInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), actor(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Review deleted successfully")
}

func (h *ReviewHandler) ByMaster(c *gin.Context) {
	masterID, err := pathID(c, "master_id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	p, err := page(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	items, err := h.reviews.ByMaster(c.Request.Context(), masterID, p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *ReviewHandler) ByClient(c *gin.Context) {
	clientID, err := pathID(c, "client_id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	p, err := page(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	items, err := h.reviews.ByClient(c.Request.Context(), actor(c), clientID, p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}
