package team

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"codexiv-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc     *Service
	ViewURL func(string) string
}

func NewHandler(svc *Service, viewURL func(string) string) *Handler {
	return &Handler{Svc: svc, ViewURL: viewURL}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/team", h.list)
	rg.GET("/team/:id", h.get)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/team", h.create)
	rg.PUT("/team/:id", h.update)
	rg.DELETE("/team/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	respond.JSON(c, http.StatusOK, toResponses(h.Svc.List(c.Request.Context(), limit), h.ViewURL))
}

func (h *Handler) get(c *gin.Context) {
	member, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Team member not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch team member", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(member, h.ViewURL))
}

func (h *Handler) create(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	member, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create team member", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(member, h.ViewURL))
}

func (h *Handler) update(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	member, err := h.Svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Team member not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update team member", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(member, h.ViewURL))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete team member", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}
