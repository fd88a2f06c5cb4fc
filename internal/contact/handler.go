package contact

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"codexiv-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPublicRoutes attaches the visitor-facing contact form endpoint.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

// RegisterAdminRoutes attaches the submission management endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/contact", h.list)
	rg.GET("/contact/:id", h.get)
	rg.PATCH("/contact/:id/status", h.updateStatus)
	rg.DELETE("/contact/:id", h.remove)
}

func (h *Handler) submit(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	sub, err := h.Svc.Submit(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record submission", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(sub))
}

func (h *Handler) list(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	respond.JSON(c, http.StatusOK, toResponses(h.Svc.List(c.Request.Context(), limit)))
}

func (h *Handler) get(c *gin.Context) {
	sub, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Submission not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch submission", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(sub))
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	sub, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Submission not found", nil)
		case errors.Is(err, ErrInvalidStatus):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown status", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update status", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(sub))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete submission", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}
