package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
)

// RequireAdmin aborts the request unless the authenticated session carries the
// admin role. Must run after the auth middleware has populated the context.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyAdminRole)
		if role != string(RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
