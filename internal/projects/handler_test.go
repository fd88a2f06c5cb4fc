package projects

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := NewService(NewMemoryRepo())
	handler := NewHandler(svc, func(key string) string { return "/files/" + key })

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterPublicRoutes(api)
	admin := router.Group("/api/v1/admin")
	handler.RegisterAdminRoutes(admin)
	return router, svc
}

func TestListEmptyReturnsArray(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out []Response
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v (body %s)", err, resp.Body.String())
	}
	if out == nil {
		t.Fatal("expected JSON array, got null")
	}
}

func TestCreateAndGetDecoratesImageURL(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(Input{
		Title:           "Site",
		LongDescription: "A site",
		Category:        "web",
		MainImage:       "project/abc_site.png",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", resp.Code, resp.Body.String())
	}
	var created Response
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.MainImageURL != "/files/project/abc_site.png" {
		t.Fatalf("expected decorated image url, got %q", created.MainImageURL)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+created.ID, nil)
	getResp := httptest.NewRecorder()
	router.ServeHTTP(getResp, getReq)
	if getResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", getResp.Code)
	}
}

func TestGetUnknownProjectIs404(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/nope", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Error.Code != "not_found" {
		t.Fatalf("expected not_found code, got %q", envelope.Error.Code)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(Input{Title: "only a title"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestDeleteProject(t *testing.T) {
	router, svc := newTestRouter(t)
	project, err := svc.Create(context.Background(), Input{Title: "t", LongDescription: "d", Category: "c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/projects/"+project.ID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if _, err := svc.Get(context.Background(), project.ID); err == nil {
		t.Fatal("expected project to be gone")
	}
}
