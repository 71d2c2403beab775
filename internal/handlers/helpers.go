package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/domain/role"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

var errInvalidID = httperr.ErrBusiness("invalid_id")

func actor(c *gin.Context) role.Actor {
	return role.Actor{
		UserID: middleware.CurrentUserID(c),
		Role:   middleware.CurrentRole(c),
	}
}

func pathID(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, errInvalidID
	}
	return uint(v), nil
}

func queryID(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil || v == 0 {
		return 0, errInvalidID
	}
	return uint(v), nil
}

func page(c *gin.Context) (pagination.Page, error) {
	return pagination.Parse(c.Query("skip"), c.Query("limit"))
}

// bindJSON writes a 400 with the validation message and reports false on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", validators.Translate(err))
		return false
	}
	return true
}
