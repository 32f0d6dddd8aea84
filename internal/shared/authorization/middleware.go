package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caterly/internal/shared/constants"
)

// RequireRoles allows the request through only when the authenticated role is
// in the allow-list. Must run after the auth middleware has set the role.
func RequireRoles(allowed ...UserRole) gin.HandlerFunc {
	allowSet := make(map[UserRole]bool, len(allowed))
	for _, role := range allowed {
		allowSet[role] = true
	}

	return func(c *gin.Context) {
		role := UserRole(c.GetString(constants.ContextKeyUserRole))
		if !allowSet[role] {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"type": "forbidden", "message": constants.ErrMsgForbidden},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireCaterer is the gate used by every /caterer route group.
func RequireCaterer() gin.HandlerFunc {
	return RequireRoles(RoleCaterer)
}
