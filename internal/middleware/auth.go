package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/domain/role"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextUser     = "user"
)

var (
	errMissingAuthorization = httperr.ErrUnauthenticated("missing_authorization")
	errInvalidAuthorization = httperr.ErrUnauthenticated("invalid_authorization")
	errInvalidToken         = httperr.ErrUnauthenticated("invalid_token")
	errForbidden            = httperr.ErrForbidden("forbidden")
)

// AuthMiddleware verifies the bearer token and loads the user it names.
// A deleted or deactivated user is rejected even with a valid token.
func AuthMiddleware(tokens *auth.TokenManager, users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, errMissingAuthorization)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, errInvalidAuthorization)
			return
		}

		id, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Abort(c, errInvalidToken)
			return
		}

		u, err := users.Get(c.Request.Context(), id.UserID)
		if err != nil {
			if httperr.IsBusiness(err, "user_not_found") {
				httperr.Abort(c, errInvalidToken)
				return
			}
			httperr.Abort(c, err)
			return
		}
		if !u.IsActive || u.Username != id.Username {
			httperr.Abort(c, errInvalidToken)
			return
		}

		c.Set(ContextUserID, u.ID)
		c.Set(ContextUserRole, role.Role(u.Role))
		c.Set(ContextUser, u)

		c.Next()
	}
}

// RequireRole lets the request through only when the caller holds one of roles.
func RequireRole(roles ...role.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := c.Get(ContextUserRole)
		if !ok {
			httperr.Abort(c, errInvalidToken)
			return
		}

		for _, r := range roles {
			if current.(role.Role) == r {
				c.Next()
				return
			}
		}

		httperr.Abort(c, errForbidden)
	}
}

func CurrentUserID(c *gin.Context) uint {
	return c.MustGet(ContextUserID).(uint)
}

func CurrentRole(c *gin.Context) role.Role {
	return c.MustGet(ContextUserRole).(role.Role)
}

func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(ContextUser).(*models.User)
}
