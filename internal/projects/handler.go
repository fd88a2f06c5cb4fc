package projects

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
	// ViewURL resolves a stored image key to its public URL.
	ViewURL func(string) string
}

func NewHandler(svc *Service, viewURL func(string) string) *Handler {
	return &Handler{Svc: svc, ViewURL: viewURL}
}

// RegisterPublicRoutes attaches the read-only routes.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
	rg.GET("/projects/:id", h.get)
}

// RegisterAdminRoutes attaches the write routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects", h.create)
	rg.PUT("/projects/:id", h.update)
	rg.DELETE("/projects/:id", h.remove)
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
	project, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Project not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch project", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(project, h.ViewURL))
}

func (h *Handler) create(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	project, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create project", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(project, h.ViewURL))
}

func (h *Handler) update(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	project, err := h.Svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Project not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update project", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(project, h.ViewURL))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete project", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}
