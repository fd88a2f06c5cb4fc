package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codexiv-backend/internal/shared/server/respond"
)

const accessContextKey = "adminAccess"

// RequireAdmin guards admin routes: unauthenticated callers get 401 (the UI
// shows the login view), authenticated non-admins get 403.
func RequireAdmin(gate *Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		access := gate.CheckAdminAccess(c.Request.Context(), BearerToken(c))
		if access.User == nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid session", nil)
			return
		}
		if !access.IsAdmin {
			respond.Error(c, http.StatusForbidden, "access_denied", "Admin privileges required", nil)
			return
		}
		c.Set(accessContextKey, access)
		c.Next()
	}
}

// AccessFromContext fetches the Access stored by RequireAdmin.
func AccessFromContext(c *gin.Context) (Access, bool) {
	val, ok := c.Get(accessContextKey)
	if !ok {
		return Access{}, false
	}
	access, ok := val.(Access)
	return access, ok
}
