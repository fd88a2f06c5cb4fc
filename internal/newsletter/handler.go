package newsletter

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/newsletter", h.subscribe)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/newsletter", h.list)
}

type subscribeRequest struct {
	Email string `json:"email"`
}

type subscriberResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

func (h *Handler) subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if err := h.Svc.Subscribe(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, ErrInvalidEmail) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid email address", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to subscribe", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) list(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	subs := h.Svc.List(c.Request.Context(), limit)
	out := make([]subscriberResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, subscriberResponse{
			ID:           sub.ID,
			Email:        sub.Email,
			Status:       sub.Status,
			SubscribedAt: sub.SubscribedAt,
		})
	}
	respond.JSON(c, http.StatusOK, out)
}
