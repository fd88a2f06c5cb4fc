package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"codexiv-backend/internal/auth"
	"codexiv-backend/internal/shared/config"
	"codexiv-backend/internal/shared/server/middleware"
	"codexiv-backend/internal/shared/telemetry"
)

// PublicRegistrar mounts visitor-facing routes under /api/v1.
type PublicRegistrar interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// AdminRegistrar mounts routes under /api/v1/admin, behind the admin gate.
type AdminRegistrar interface {
	RegisterAdminRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries everything the router mounts.
type RouterDeps struct {
	Cfg config.Config

	Gate        *auth.Gate
	AuthHandler *auth.Handler
	Google      *auth.GoogleService

	Public []PublicRegistrar
	Admin  []AdminRegistrar

	// PublicWriteRegistrars are public mutation surfaces (contact form,
	// newsletter signup) that get their own rate-limit bucket.
	PublicWrite []PublicRegistrar

	// LocalFilesDir, when non-empty, is served under /files for the local
	// object store.
	LocalFilesDir string
}

// NewRouter assembles the gin engine: shared middleware, public content
// routes behind maintenance mode, rate-limited public writes, and the
// admin surface behind the session gate.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(deps.Cfg.CORSAllowOrigin))

	if deps.Cfg.AnalyticsEnabled {
		reg := prometheus.NewRegistry()
		metrics, err := middleware.NewMetrics(reg)
		if err != nil {
			telemetry.Error("metrics.init_failed", map[string]any{"error": err.Error()})
		} else {
			r.Use(metrics.Handler())
			r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
		}
	}

	r.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth stays up during maintenance so operators can still sign in.
	authGroup := r.Group("/api/v1")
	deps.AuthHandler.RegisterRoutes(authGroup)
	if deps.Google != nil {
		deps.Google.RegisterRoutes(authGroup)
	}

	public := r.Group("/api/v1")
	public.Use(middleware.Maintenance(deps.Cfg.MaintenanceMode))
	for _, reg := range deps.Public {
		reg.RegisterPublicRoutes(public)
	}

	limiter := middleware.NewRateLimiter(nil)
	writeRule := middleware.RateLimitRule{Rate: deps.Cfg.RateLimitRPS, Burst: deps.Cfg.RateLimitBurst}
	publicWrite := r.Group("/api/v1")
	publicWrite.Use(middleware.Maintenance(deps.Cfg.MaintenanceMode))
	publicWrite.Use(middleware.RateLimit(limiter, writeRule))
	for _, reg := range deps.PublicWrite {
		reg.RegisterPublicRoutes(publicWrite)
	}

	if deps.Cfg.AdminDashboardEnabled {
		admin := r.Group("/api/v1/admin")
		admin.Use(auth.RequireAdmin(deps.Gate))
		for _, reg := range deps.Admin {
			reg.RegisterAdminRoutes(admin)
		}
	}

	if deps.LocalFilesDir != "" {
		r.Static("/files", deps.LocalFilesDir)
	}

	return r
}

// Addr builds the listen address for a configured port.
func Addr(port string) string {
	if port == "" {
		port = "8080"
	}
	return ":" + port
}
