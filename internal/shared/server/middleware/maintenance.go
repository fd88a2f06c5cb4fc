package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codexiv-backend/internal/shared/server/respond"
)

// Maintenance answers 503 on the routes it wraps while maintenance mode is
// on. Auth and admin routes are mounted outside it so operators can still
// get in.
func Maintenance(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}
		respond.Error(c, http.StatusServiceUnavailable, "maintenance", "The site is down for maintenance", nil)
	}
}
