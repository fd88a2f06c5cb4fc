package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"codexiv-backend/internal/auth"
	"codexiv-backend/internal/projects"
	"codexiv-backend/internal/sessions"
	sharedauth "codexiv-backend/internal/shared/auth"
	"codexiv-backend/internal/shared/config"
	"codexiv-backend/internal/users"
)

type routerFixture struct {
	router     *gin.Engine
	userSvc    *users.Service
	sessionSvc *sessions.Service
}

func newRouterFixture(t *testing.T, cfg config.Config) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userSvc := users.NewService(users.NewMemoryRepo())
	tokens := sharedauth.NewTokens("test-secret", time.Hour)
	sessionSvc := sessions.NewService(sessions.NewMemoryRepo(), tokens, time.Hour)
	gate := auth.NewGate(sessionSvc, userSvc)

	projectSvc := projects.NewService(projects.NewMemoryRepo())
	projectHandler := projects.NewHandler(projectSvc, func(key string) string { return "/files/" + key })

	router := NewRouter(RouterDeps{
		Cfg:         cfg,
		Gate:        gate,
		AuthHandler: auth.NewHandler(gate, sessionSvc),
		Public:      []PublicRegistrar{projectHandler},
		Admin:       []AdminRegistrar{projectHandler},
	})
	return &routerFixture{router: router, userSvc: userSvc, sessionSvc: sessionSvc}
}

func adminToken(t *testing.T, f *routerFixture) string {
	t.Helper()
	ctx := context.Background()
	if err := f.userSvc.UpsertFromAuth(ctx, users.User{ID: "admin-1", Email: "admin@example.com"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := f.userSvc.GrantLabel(ctx, "admin-1", users.AdminLabel); err != nil {
		t.Fatalf("grant: %v", err)
	}
	_, token, err := f.sessionSvc.Issue(ctx, "admin-1", "admin@example.com", "Admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return token
}

func baseConfig() config.Config {
	return config.Config{
		Env:                   "local",
		AdminDashboardEnabled: true,
		RateLimitRPS:          100,
		RateLimitBurst:        100,
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	f := newRouterFixture(t, baseConfig())

	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/projects/x", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	f := newRouterFixture(t, baseConfig())
	ctx := context.Background()
	if err := f.userSvc.UpsertFromAuth(ctx, users.User{ID: "user-1", Email: "user@example.com"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	_, token, err := f.sessionSvc.Issue(ctx, "user-1", "user@example.com", "User")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/projects/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.Code)
	}
}

func TestAdminRoutesAllowAdmin(t *testing.T) {
	f := newRouterFixture(t, baseConfig())
	token := adminToken(t, f)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/projects/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d (%s)", resp.Code, resp.Body.String())
	}
}

func TestAccessEndpointReportsGateAnswer(t *testing.T) {
	f := newRouterFixture(t, baseConfig())
	token := adminToken(t, f)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/access", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var access struct {
		User    *users.User `json:"user"`
		IsAdmin bool        `json:"isAdmin"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &access); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if access.User == nil || !access.IsAdmin {
		t.Fatalf("expected admin access, got %+v", access)
	}

	// No token degrades to {null, false}, still 200.
	bare := httptest.NewRecorder()
	f.router.ServeHTTP(bare, httptest.NewRequest(http.MethodGet, "/api/v1/admin/access", nil))
	if bare.Code != http.StatusOK {
		t.Fatalf("expected 200 without token, got %d", bare.Code)
	}
	if err := json.Unmarshal(bare.Body.Bytes(), &access); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if access.User != nil || access.IsAdmin {
		t.Fatalf("expected empty access, got %+v", access)
	}
}

func TestMaintenanceModeKeepsAuthAndAdminUp(t *testing.T) {
	cfg := baseConfig()
	cfg.MaintenanceMode = true
	f := newRouterFixture(t, cfg)
	token := adminToken(t, f)

	public := httptest.NewRecorder()
	f.router.ServeHTTP(public, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))
	if public.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 on public route, got %d", public.Code)
	}

	access := httptest.NewRecorder()
	accessReq := httptest.NewRequest(http.MethodGet, "/api/v1/admin/access", nil)
	accessReq.Header.Set("Authorization", "Bearer "+token)
	f.router.ServeHTTP(access, accessReq)
	if access.Code != http.StatusOK {
		t.Fatalf("expected auth surface to stay up, got %d", access.Code)
	}

	admin := httptest.NewRecorder()
	adminReq := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/projects/x", nil)
	adminReq.Header.Set("Authorization", "Bearer "+token)
	f.router.ServeHTTP(admin, adminReq)
	if admin.Code != http.StatusOK {
		t.Fatalf("expected admin surface to stay up, got %d", admin.Code)
	}
}

func TestDashboardFlagDisablesAdminSurface(t *testing.T) {
	cfg := baseConfig()
	cfg.AdminDashboardEnabled = false
	f := newRouterFixture(t, cfg)
	token := adminToken(t, f)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/projects/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with dashboard disabled, got %d", resp.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	f := newRouterFixture(t, baseConfig())
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
