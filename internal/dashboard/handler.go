package dashboard

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"codexiv-backend/internal/shared/server/respond"
)

// Handler serves the admin dashboard aggregates.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/stats", h.stats)
	rg.GET("/dashboard/activity", h.activity)
}

func (h *Handler) stats(c *gin.Context) {
	respond.JSON(c, http.StatusOK, h.Svc.GetStats(c.Request.Context()))
}

func (h *Handler) activity(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	respond.JSON(c, http.StatusOK, h.Svc.GetRecentActivity(c.Request.Context(), limit))
}
