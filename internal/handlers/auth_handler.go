package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/account"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type AuthHandler struct {
	register *account.Register
	login    *account.Login
}

func NewAuthHandler(register *account.Register, login *account.Login) *AuthHandler {
	return &AuthHandler{register: register, login: login}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=client master"`
}

// LoginRequest binds from JSON or an OAuth2-style password form.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.register.Execute(c.Request.Context(), account.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, u)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", validators.Translate(err))
		return
	}

	out, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	httpresp.OK(c, middleware.CurrentUser(c))
}
