package uploads

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	localstore "codexiv-backend/internal/shared/storage/object/local"
)

func newTestRouter(t *testing.T, maxBytes int64) (*gin.Engine, *localstore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := localstore.New(t.TempDir())
	handler := NewHandler(store, maxBytes)

	router := gin.New()
	admin := router.Group("/api/v1/admin")
	handler.RegisterAdminRoutes(admin)
	return router, store
}

func multipartBody(t *testing.T, field, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadReturnsFileRefAndViewURL(t *testing.T) {
	router, store := newTestRouter(t, 1<<20)

	body, contentType := multipartBody(t, "image", "hero.png", "png-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/uploads/project", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", resp.Code, resp.Body.String())
	}

	var out struct {
		FileRef string `json:"fileRef"`
		ViewURL string `json:"viewUrl"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(out.FileRef, "project/") {
		t.Fatalf("expected namespaced fileRef, got %q", out.FileRef)
	}
	if out.ViewURL != store.ViewURL(out.FileRef) {
		t.Fatalf("viewUrl %q does not match store's %q", out.ViewURL, store.ViewURL(out.FileRef))
	}
	if !strings.HasSuffix(out.FileRef, "_hero.png") {
		t.Fatalf("expected sanitized original name in key, got %q", out.FileRef)
	}
}

func TestUploadUnknownKindIs400(t *testing.T) {
	router, _ := newTestRouter(t, 1<<20)

	body, contentType := multipartBody(t, "image", "x.png", "data")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/uploads/invoices", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestUploadMissingFieldIs400(t *testing.T) {
	router, _ := newTestRouter(t, 1<<20)

	body, contentType := multipartBody(t, "document", "x.png", "data")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/uploads/blog", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestUploadOversizedIs400(t *testing.T) {
	router, _ := newTestRouter(t, 64)

	body, contentType := multipartBody(t, "image", "big.png", strings.Repeat("x", 4096))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/uploads/team", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized upload, got %d", resp.Code)
	}
}

func TestDeleteUploadedFile(t *testing.T) {
	router, store := newTestRouter(t, 1<<20)

	body, contentType := multipartBody(t, "image", "gone.png", "data")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/uploads/blog", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var out struct {
		FileRef string `json:"fileRef"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	delReq := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/uploads/"+out.FileRef, nil)
	delResp := httptest.NewRecorder()
	router.ServeHTTP(delResp, delReq)
	if delResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", delResp.Code, delResp.Body.String())
	}

	if _, err := store.Open(req.Context(), out.FileRef); err == nil {
		t.Fatal("expected file to be gone after delete")
	}
}
