package services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"codexiv-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the manager.
type Handler struct {
	Svc *Manager
}

func NewHandler(svc *Manager) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.list)
	rg.GET("/services/:id", h.get)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/services", h.create)
	rg.PUT("/services/:id", h.update)
	rg.DELETE("/services/:id", h.remove)
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
	svc, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Service not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch service", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(svc))
}

func (h *Handler) create(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	svc, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create service", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(svc))
}

func (h *Handler) update(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	svc, err := h.Svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Service not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update service", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(svc))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete service", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}
