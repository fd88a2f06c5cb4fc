package site

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codexiv-backend/internal/shared/config"
	"codexiv-backend/internal/shared/server/respond"
)

// Handler serves site-wide metadata: company contact details and the
// feature flags the front end renders against.
type Handler struct {
	Cfg config.Config
}

func NewHandler(cfg config.Config) *Handler {
	return &Handler{Cfg: cfg}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/site", h.site)
}

type siteResponse struct {
	Company  companyInfo     `json:"company"`
	Features map[string]bool `json:"features"`
}

type companyInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func (h *Handler) site(c *gin.Context) {
	respond.JSON(c, http.StatusOK, siteResponse{
		Company: companyInfo{
			Name:    h.Cfg.Company.Name,
			Email:   h.Cfg.Company.Email,
			Phone:   h.Cfg.Company.Phone,
			Address: h.Cfg.Company.Address,
		},
		Features: map[string]bool{
			"adminDashboard": h.Cfg.AdminDashboardEnabled,
			"fileUploads":    h.Cfg.FileUploadsEnabled,
			"analytics":      h.Cfg.AnalyticsEnabled,
			"maintenance":    h.Cfg.MaintenanceMode,
		},
	})
}
