package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"codexiv-backend/internal/sessions"
	"codexiv-backend/internal/shared/server/respond"
)

// Handler exposes the identity-gate endpoints consumed by the admin UI.
type Handler struct {
	Gate     *Gate
	Sessions *sessions.Service
}

func NewHandler(gate *Gate, sessionSvc *sessions.Service) *Handler {
	return &Handler{Gate: gate, Sessions: sessionSvc}
}

// RegisterRoutes attaches the gate and logout routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/access", h.check)
	rg.POST("/admin/access/refresh", h.refresh)
	rg.POST("/auth/logout", h.logout)
}

func (h *Handler) check(c *gin.Context) {
	access := h.Gate.CheckAdminAccess(c.Request.Context(), BearerToken(c))
	respond.JSON(c, http.StatusOK, access)
}

func (h *Handler) refresh(c *gin.Context) {
	access := h.Gate.RefreshUserAndCheckAdmin(c.Request.Context(), BearerToken(c))
	respond.JSON(c, http.StatusOK, access)
}

func (h *Handler) logout(c *gin.Context) {
	token := BearerToken(c)
	if token == "" {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
		return
	}
	session, _, err := h.Sessions.Resolve(c.Request.Context(), token)
	if err == nil {
		if err := h.Sessions.Revoke(c.Request.Context(), session.ID); err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to log out", nil)
			return
		}
	}
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
}
