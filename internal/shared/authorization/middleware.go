package authorization

import (
	"github.com/gin-gonic/gin"

	"mantis/internal/shared/constants"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsAdmin() {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSupervisor allows admins and supervisors through. Mutating asset,
// plan, work order and spare part management routes use this, mirroring the
// shop-floor rule that only supervisors dispatch work.
func RequireSupervisor() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsSupervisor() {
			c.JSON(403, gin.H{
				"error": "supervisor access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
